package kruto

import (
	"time"

	"github.com/reoring/kruto/i18n"
)

const (
	dateTag   = "date"
	tagKey    = "_"
	dateValue = "value"
)

// DateLayout renders millisecond precision with an explicit numeric offset,
// so UTC values end in "+00:00" rather than "Z".
const DateLayout = "2006-01-02T15:04:05.000-07:00"

// IsDateMap reports whether v has the wire shape {"_":"date","value":<string>}.
func IsDateMap(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if tag, _ := m[tagKey].(string); tag != dateTag {
		return false
	}
	_, ok = m[dateValue].(string)
	return ok
}

// DecodeDate converts a date-shaped wire map into a time.Time. ok is false
// when v is not date-shaped; err is set when it is but the value does not parse.
func DecodeDate(v any) (t time.Time, ok bool, err error) {
	if !IsDateMap(v) {
		return time.Time{}, false, nil
	}
	s := v.(map[string]any)[dateValue].(string)
	t, err = ParseDate(s)
	if err != nil {
		return time.Time{}, true, Issues{{Path: "/" + dateValue, Code: CodeInvalidFormat, Message: i18n.T(CodeInvalidFormat, nil), Hint: s, Cause: err}}
	}
	return t, true, nil
}

// EncodeDate converts t into its wire map.
func EncodeDate(t time.Time) map[string]any {
	return map[string]any{tagKey: dateTag, dateValue: FormatDate(t)}
}

// FormatDate renders t in the wire layout.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// ParseDate accepts ISO-8601 timestamps with an offset, falling back to a
// naive form interpreted as UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	if t2, err2 := time.Parse("2006-01-02T15:04:05.999999999", s); err2 == nil {
		return t2.UTC(), nil
	}
	return time.Time{}, err
}
