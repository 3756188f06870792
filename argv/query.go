package argv

import (
	"fmt"

	"github.com/dzonerzy/go-argv/internal/flagset"
)

// argByKey resolves a query name to its argument. Unknown names are
// programmer errors.
func (p *Parser) argByKey(key string) Argument {
	a, ok := p.registry[key]
	if !ok {
		setupPanic(SetupKeyNotFound, "no argument registered under %q", key)
	}
	return a
}

// valuesOf resolves a query name to its value capability.
func (p *Parser) valuesOf(key string) *valueMixin {
	a := p.argByKey(key)
	vm := a.valuePart()
	if vm == nil {
		setupPanic(SetupNoValues, "argument %q cannot hold values", key)
	}
	return vm
}

// Arg returns the argument registered under key or any of its aliases.
func (p *Parser) Arg(key string) Argument { return p.argByKey(key) }

// HasParsed reports whether at least one pass completed.
func (p *Parser) HasParsed() bool { return p.hasParsed }

// HasErrors reports whether the last pass recorded any error.
func (p *Parser) HasErrors() bool { return p.errs.IsNotEmpty() }

// ErrorFlags returns the aggregated parser error flags.
func (p *Parser) ErrorFlags() flagset.Flags[ParserError] { return p.errs }

// Unrecognized returns the retained unrecognized tokens in encounter order.
func (p *Parser) Unrecognized() []string {
	out := make([]string, len(p.unrecognized))
	copy(out, p.unrecognized)
	return out
}

// Constraints returns the registered constraints.
func (p *Parser) Constraints() []*Constraint {
	out := make([]*Constraint, len(p.constraints))
	copy(out, p.constraints)
	return out
}

// WasFound reports whether the argument registered under key matched.
func (p *Parser) WasFound(key string) bool { return p.argByKey(key).WasFound() }

// Occurrences returns how many times the argument under key matched.
func (p *Parser) Occurrences(key string) int { return p.argByKey(key).Occurrences() }

// ArgHasErrors reports whether the argument under key recorded errors.
func (p *Parser) ArgHasErrors(key string) bool { return p.argByKey(key).HasErrors() }

// CountValuesFound returns how many values the argument under key holds.
func (p *Parser) CountValuesFound(key string) int { return p.valuesOf(key).CountValues() }

// RawValues returns the raw stored value texts of the argument under key.
func (p *Parser) RawValues(key string) []string {
	vm := p.valuesOf(key)
	out := make([]string, len(vm.values))
	for i, v := range vm.values {
		out[i] = v.Raw()
	}
	return out
}

// AtAs converts the value at index of the argument under key to T.
func AtAs[T any](p *Parser, key string, index int) (T, error) {
	vm := p.valuesOf(key)
	if index < 0 || index >= len(vm.values) {
		var zero T
		return zero, fmt.Errorf("%s[%d]: %w", key, index, ErrValueNotFound)
	}
	return ValueAs[T](vm.values[index])
}

// AtAsOr converts the value at index to T, returning def on any failure.
func AtAsOr[T any](p *Parser, key string, index int, def T) T {
	v, err := AtAs[T](p, key, index)
	if err != nil {
		return def
	}
	return v
}

// TryAtAs converts the value at index into out, reporting success.
func TryAtAs[T any](p *Parser, key string, index int, out *T) bool {
	v, err := AtAs[T](p, key, index)
	if err != nil {
		return false
	}
	*out = v
	return true
}

// FrontAs converts the first value of the argument under key to T.
func FrontAs[T any](p *Parser, key string) (T, error) {
	return AtAs[T](p, key, 0)
}

// FrontAsOr converts the first value to T, returning def on any failure.
func FrontAsOr[T any](p *Parser, key string, def T) T {
	return AtAsOr(p, key, 0, def)
}

// TryFrontAs converts the first value into out, reporting success.
func TryFrontAs[T any](p *Parser, key string, out *T) bool {
	return TryAtAs(p, key, 0, out)
}

// AllAs converts every stored value of the argument under key to T, failing
// on the first unconvertible value.
func AllAs[T any](p *Parser, key string) ([]T, error) {
	vm := p.valuesOf(key)
	out := make([]T, 0, len(vm.values))
	for i, v := range vm.values {
		t, err := ValueAs[T](v)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// AllAsOr converts every stored value to T, returning def on any failure.
func AllAsOr[T any](p *Parser, key string, def []T) []T {
	out, err := AllAs[T](p, key)
	if err != nil {
		return def
	}
	return out
}

// TryAllAs converts every stored value into out, reporting success. out is
// left untouched on failure.
func TryAllAs[T any](p *Parser, key string, out *[]T) bool {
	v, err := AllAs[T](p, key)
	if err != nil {
		return false
	}
	*out = v
	return true
}
