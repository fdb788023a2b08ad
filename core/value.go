// SPDX-License-Identifier: MIT

package core

import "strconv"

// Kind tags the payload carried by a Value.
type Kind uint8

const (
	// KindBool marks a boolean value (true/false).
	KindBool Kind = iota + 1
	// KindLabel marks a categorical string label.
	KindLabel
	// KindInt marks an integer value.
	KindInt
)

// String returns a short name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindLabel:
		return "label"
	case KindInt:
		return "int"
	default:
		return "invalid"
	}
}

// Value is one possible value of a random variable.
//
// It is a comparable tagged union: two Values are == iff they have the same
// kind and payload, so Value is safe to use as a map key. The zero Value has
// no kind and is never a member of any domain.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	label string
}

// Shared boolean values, in the order used by NewBooleanDomain.
var (
	True  = Bool(true)
	False = Bool(false)
)

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Label returns a categorical Value.
func Label(s string) Value { return Value{kind: KindLabel, label: s} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Kind reports the payload kind; zero for the zero Value.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v is the zero (unset) Value.
func (v Value) IsZero() bool { return v.kind == 0 }

// AsBool returns the boolean payload and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsLabel returns the label payload and whether v is a label.
func (v Value) AsLabel() (string, bool) { return v.label, v.kind == KindLabel }

// AsInt returns the integer payload and whether v is an integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// String renders the payload: true/false, the label itself, or a decimal integer.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindLabel:
		return v.label
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	default:
		return "<unset>"
	}
}
