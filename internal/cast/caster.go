package cast

// Caster is the polymorphic face of To used by value-bearing arguments. A
// caster validates one raw string at a time; implementations may additionally
// deposit the converted value into caller-owned storage.
type Caster interface {
	// Cast converts s, storing the result in any bound holder. The returned
	// error is a *Error when conversion fails.
	Cast(s string) error
	// Reset discards state accumulated by previous casts so a parser re-run
	// starts clean. Casters without holders treat this as a no-op.
	Reset()
	// Target names the destination type for error display.
	Target() string
}

// checker is a holderless caster: it only validates convertibility.
type checker[T any] struct{}

// Checker returns a Caster that validates values as type T without storing
// them anywhere.
func Checker[T any]() Caster { return checker[T]{} }

func (checker[T]) Cast(s string) error {
	_, err := To[T](s)
	return err
}

func (checker[T]) Reset() {}

func (checker[T]) Target() string {
	var zero T
	return typeName(zero)
}

// scalar deposits each successfully converted value into a single variable;
// later casts overwrite earlier ones.
type scalar[T any] struct {
	out  *T
	orig T
}

// Scalar returns a Caster that writes converted values through out.
func Scalar[T any](out *T) Caster { return &scalar[T]{out: out, orig: *out} }

func (c *scalar[T]) Cast(s string) error {
	v, err := To[T](s)
	if err != nil {
		return err
	}
	*c.out = v
	return nil
}

func (c *scalar[T]) Reset() { *c.out = c.orig }

func (c *scalar[T]) Target() string {
	var zero T
	return typeName(zero)
}

// appender appends each successfully converted value to a slice holder.
type appender[T any] struct {
	out *[]T
}

// Appender returns a Caster that appends converted values to out.
func Appender[T any](out *[]T) Caster { return &appender[T]{out: out} }

func (c *appender[T]) Cast(s string) error {
	v, err := To[T](s)
	if err != nil {
		return err
	}
	*c.out = append(*c.out, v)
	return nil
}

func (c *appender[T]) Reset() { *c.out = (*c.out)[:0] }

func (c *appender[T]) Target() string {
	var zero T
	return typeName(zero)
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "number"
	default:
		return "value"
	}
}
