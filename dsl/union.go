package dsl

import (
	"fmt"

	kruto "github.com/reoring/kruto"
)

// Union declares an ordered union. The first variant whose discriminators
// match a value wins, so list more specific variants first. Union panics when
// an object variant declares no discriminators or names a key it does not
// have.
func Union(name string, variants ...kruto.Node) *kruto.Union {
	return Define(Forward(name), variants...)
}

// Forward declares a union whose variants are supplied later with Define.
// Use it for recursive types: objects may reference the returned node before
// the union is complete.
func Forward(name string) *kruto.Union { return &kruto.Union{Name: name} }

// Define sets the variants of u and validates it, panicking on error.
func Define(u *kruto.Union, variants ...kruto.Node) *kruto.Union {
	u.Variants = append([]kruto.Node(nil), variants...)
	if err := u.Validate(); err != nil {
		panic(fmt.Sprintf("dsl: union %s: %v", u.Name, err))
	}
	return u
}
