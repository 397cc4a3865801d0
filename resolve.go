package kruto

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/reoring/kruto/i18n"
)

// Resolve picks the variant of u whose shape m satisfies.
//
// Variants are tried in declared order and the first match wins. A variant
// matches when every one of its discriminator keys is present in m and, for
// discriminators declared as literals, m holds exactly the literal's constant.
// Non-literal discriminators match on presence alone.
func Resolve(u *Union, m map[string]any) (*Object, error) {
	for _, o := range u.Objects() {
		if Satisfies(o, m) {
			return o, nil
		}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return nil, Issues{{
		Path:    "/",
		Code:    CodeDiscriminatorUnknown,
		Message: i18n.T(CodeDiscriminatorUnknown, map[string]string{"union": u.Name}),
		Hint:    u.Name + " keys=[" + strings.Join(keys, ",") + "]",
	}}
}

// Satisfies reports whether m carries the discriminators of o. Objects with no
// discriminators never satisfy a union lookup.
func Satisfies(o *Object, m map[string]any) bool {
	if len(o.Discriminators) == 0 {
		return false
	}
	for _, d := range o.Discriminators {
		v, present := m[d]
		if !present {
			return false
		}
		f, ok := o.Field(d)
		if !ok {
			continue
		}
		lit, ok := Unwrap(f.Node).(*Literal)
		if !ok {
			continue
		}
		if !literalEqual(lit.Value, v) {
			return false
		}
	}
	return true
}

// literalEqual compares a declared constant against a wire value. Numbers are
// compared by value regardless of their Go representation.
func literalEqual(want, got any) bool {
	if wn, ok := toFloat(want); ok {
		gn, ok := toFloat(got)
		return ok && wn == gn
	}
	return want == got
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
