package argv

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dzonerzy/go-argv/internal/cast"
	"github.com/dzonerzy/go-argv/internal/flagset"
)

// ExistingPath is a string conversion target whose cast succeeds only for
// paths that exist on the filesystem; failures carry the path error kind.
type ExistingPath = cast.ExistingPath

// Value is one validated token stored by a value-bearing argument. Validation
// runs once at construction: the raw text is matched against the regex bound
// to the value position, then handed to the position's caster. A Value with
// errors is still stored and queryable; its error flags and message report
// what failed.
type Value struct {
	raw    string
	errs   flagset.Flags[ValueError]
	errMsg string
}

func newValue(raw string, re *regexp.Regexp, caster cast.Caster) *Value {
	v := &Value{raw: raw}
	v.validate(re, caster)
	return v
}

func (v *Value) validate(re *regexp.Regexp, caster cast.Caster) {
	if re != nil && !re.MatchString(v.raw) {
		v.errs.Set(ErrValueRegex)
		v.errMsg = "Invalid argument"
		return
	}
	if caster == nil {
		return
	}
	err := caster.Cast(v.raw)
	if err == nil {
		return
	}
	v.errs.Set(ErrValueCast)
	castErr := &cast.Error{}
	if errors.As(err, &castErr) {
		switch castErr.Kind {
		case cast.KindArithmetic:
			v.errMsg = "Invalid number"
			return
		case cast.KindPath:
			v.errs.Set(ErrValuePath)
		}
	}
	v.errMsg = err.Error()
}

// Raw returns the original token text.
func (v *Value) Raw() string { return v.raw }

// HasErrors reports whether validation failed.
func (v *Value) HasErrors() bool { return v.errs.IsNotEmpty() }

// Errors returns the validation error flags.
func (v *Value) Errors() flagset.Flags[ValueError] { return v.errs }

// ErrorMessage returns the human-readable validation failure, or "" when the
// value is clean.
func (v *Value) ErrorMessage() string { return v.errMsg }

// ValueAs converts the raw text to T. It fails when the text is not
// convertible; validation errors recorded at parse time do not block a
// conversion to a different target type.
func ValueAs[T any](v *Value) (T, error) {
	out, err := cast.To[T](v.raw)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("value %q: %w", v.raw, err)
	}
	return out, nil
}

// ValueAsOr converts the raw text to T, returning def on failure.
func ValueAsOr[T any](v *Value, def T) T {
	out, err := cast.To[T](v.raw)
	if err != nil {
		return def
	}
	return out
}

// TryValueAs converts the raw text into out, reporting success. out is left
// untouched on failure.
func TryValueAs[T any](v *Value, out *T) bool {
	return cast.TryTo(v.raw, out)
}
