// Package cast converts raw command-line text into typed Go values. It is the
// conversion backend of the argv package: every typed accessor and every
// per-value caster funnels through To.
//
// Conversion failures carry a Kind so callers can distinguish numeric
// conversion errors ("Invalid number" in user-facing output) and filesystem
// path errors from everything else.
package cast

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// Kind categorizes a conversion failure.
type Kind int

const (
	// KindOther is any failure not covered by a more specific kind.
	KindOther Kind = iota
	// KindArithmetic marks numeric conversion failures (int, uint, float).
	KindArithmetic
	// KindPath marks filesystem path validation failures.
	KindPath
)

// Error is a conversion failure with its category and target type name.
type Error struct {
	Kind   Kind
	Target string
	Input  string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot convert %q to %s: %v", e.Input, e.Target, e.Cause)
	}
	return fmt.Sprintf("cannot convert %q to %s", e.Input, e.Target)
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, target, input string, cause error) *Error {
	return &Error{Kind: kind, Target: target, Input: input, Cause: cause}
}

// ExistingPath is a string target whose conversion succeeds only when the
// path exists on the filesystem. Failures are reported with KindPath.
type ExistingPath string

// To converts s into a value of type T. Supported targets: string, bool, the
// signed/unsigned integer types, float32/float64, time.Duration,
// ExistingPath, uuid.UUID and semver.Version.
//
//nolint:gocyclo // One branch per supported target type.
func To[T any](s string) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = s
	case *bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return out, newError(KindOther, "bool", s, err)
		}
		*p = v
	case *int:
		v, err := strconv.ParseInt(s, 0, strconv.IntSize)
		if err != nil {
			return out, newError(KindArithmetic, "int", s, err)
		}
		*p = int(v)
	case *int8:
		v, err := strconv.ParseInt(s, 0, 8)
		if err != nil {
			return out, newError(KindArithmetic, "int8", s, err)
		}
		*p = int8(v)
	case *int16:
		v, err := strconv.ParseInt(s, 0, 16)
		if err != nil {
			return out, newError(KindArithmetic, "int16", s, err)
		}
		*p = int16(v)
	case *int32:
		v, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return out, newError(KindArithmetic, "int32", s, err)
		}
		*p = int32(v)
	case *int64:
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return out, newError(KindArithmetic, "int64", s, err)
		}
		*p = v
	case *uint:
		v, err := strconv.ParseUint(s, 0, strconv.IntSize)
		if err != nil {
			return out, newError(KindArithmetic, "uint", s, err)
		}
		*p = uint(v)
	case *uint8:
		v, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return out, newError(KindArithmetic, "uint8", s, err)
		}
		*p = uint8(v)
	case *uint16:
		v, err := strconv.ParseUint(s, 0, 16)
		if err != nil {
			return out, newError(KindArithmetic, "uint16", s, err)
		}
		*p = uint16(v)
	case *uint32:
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return out, newError(KindArithmetic, "uint32", s, err)
		}
		*p = uint32(v)
	case *uint64:
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return out, newError(KindArithmetic, "uint64", s, err)
		}
		*p = v
	case *float32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return out, newError(KindArithmetic, "float32", s, err)
		}
		*p = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return out, newError(KindArithmetic, "float64", s, err)
		}
		*p = v
	case *time.Duration:
		v, err := time.ParseDuration(s)
		if err != nil {
			return out, newError(KindOther, "duration", s, err)
		}
		*p = v
	case *ExistingPath:
		if _, err := os.Stat(s); err != nil {
			return out, newError(KindPath, "path", s, err)
		}
		*p = ExistingPath(s)
	case *uuid.UUID:
		v, err := uuid.Parse(s)
		if err != nil {
			return out, newError(KindOther, "uuid", s, err)
		}
		*p = v
	case *semver.Version:
		v, err := semver.NewVersion(s)
		if err != nil {
			return out, newError(KindOther, "version", s, err)
		}
		*p = *v
	default:
		return out, newError(KindOther, fmt.Sprintf("%T", out), s, nil)
	}
	return out, nil
}

// ToOr converts s into T, returning def on any failure. It never fails.
func ToOr[T any](s string, def T) T {
	v, err := To[T](s)
	if err != nil {
		return def
	}
	return v
}

// TryTo converts s into *out and reports whether the conversion succeeded.
func TryTo[T any](s string, out *T) bool {
	v, err := To[T](s)
	if err != nil {
		return false
	}
	*out = v
	return true
}
