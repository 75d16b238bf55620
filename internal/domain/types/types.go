// Package types holds Delta, the optional signed change of a record
// between two snapshots.
package types

import "strconv"

// Delta is a signed difference that may be absent. The zero value is absent.
type Delta struct {
	value int
	set   bool
}

// Some returns a present delta holding v.
func Some(v int) Delta { return Delta{value: v, set: true} }

// None returns an absent delta.
func None() Delta { return Delta{} }

// Get returns the value and whether it is present.
func (d Delta) Get() (int, bool) { return d.value, d.set }

// IsSet reports whether the delta is present.
func (d Delta) IsSet() bool { return d.set }

// String renders positive values with a leading '+', other present values
// as plain signed numbers and an absent delta as "-".
func (d Delta) String() string {
	switch {
	case !d.set:
		return "-"
	case d.value > 0:
		return "+" + strconv.Itoa(d.value)
	default:
		return strconv.Itoa(d.value)
	}
}
