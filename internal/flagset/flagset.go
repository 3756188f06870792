// Package flagset provides a tiny generic bitset over enum-like flag
// constants. Argument and parser state in the argv package is tracked as
// combinable flags rather than booleans, so the same container serves both
// configuration flags and error flags.
package flagset

// Flags is a bitset over values of E. Flag constants must be distinct powers
// of two; the zero value is the empty set.
type Flags[E ~uint32] struct {
	bits E
}

// Of builds a set containing the given flags.
func Of[E ~uint32](vs ...E) Flags[E] {
	var f Flags[E]
	f.Set(vs...)
	return f
}

// Set adds the given flags to the set.
func (f *Flags[E]) Set(vs ...E) {
	for _, v := range vs {
		f.bits |= v
	}
}

// Unset removes the given flags from the set.
func (f *Flags[E]) Unset(vs ...E) {
	for _, v := range vs {
		f.bits &^= v
	}
}

// Clear removes every flag from the set.
func (f *Flags[E]) Clear() {
	f.bits = 0
}

// IsSet reports whether every bit of v is present in the set.
func (f Flags[E]) IsSet(v E) bool {
	return f.bits&v == v
}

// IsNotSet reports whether no bit of v is present in the set.
func (f Flags[E]) IsNotSet(v E) bool {
	return f.bits&v == 0
}

// IsEmpty reports whether the set contains no flags.
func (f Flags[E]) IsEmpty() bool {
	return f.bits == 0
}

// IsNotEmpty reports whether the set contains at least one flag.
func (f Flags[E]) IsNotEmpty() bool {
	return f.bits != 0
}

// Mask returns the raw combined bits of the set.
func (f Flags[E]) Mask() E {
	return f.bits
}
