package dsl

import (
	kruto "github.com/reoring/kruto"
)

// Int returns the integer leaf node. Decoded values are int64.
func Int() kruto.Node { return kruto.Primitive{K: kruto.KindInt} }

// Float returns the floating point leaf node. Decoded values are float64.
func Float() kruto.Node { return kruto.Primitive{K: kruto.KindFloat} }

// String returns the string leaf node.
func String() kruto.Node { return kruto.Primitive{K: kruto.KindString} }

// Bool returns the boolean leaf node.
func Bool() kruto.Node { return kruto.Primitive{K: kruto.KindBool} }

// Date returns the date leaf node. Decoded values are time.Time.
func Date() kruto.Node { return kruto.Primitive{K: kruto.KindDate} }

// Any returns a leaf node that accepts any wire value unchanged.
func Any() kruto.Node { return kruto.Primitive{K: kruto.KindAny} }

// Null returns the node for values that are always absent.
func Null() kruto.Node { return kruto.Primitive{K: kruto.KindNull} }

// Optional marks n as possibly absent.
func Optional(n kruto.Node) kruto.Node { return &kruto.Optional{Elem: n} }

// List returns an ordered sequence of n.
func List(n kruto.Node) kruto.Node { return &kruto.List{Elem: n} }

// Literal returns a constant node, typically used as a discriminator.
func Literal(v any) kruto.Node { return &kruto.Literal{Value: v} }
