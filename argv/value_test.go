package argv

import (
	"regexp"
	"testing"

	"github.com/dzonerzy/go-argv/internal/cast"
)

func TestValueRegexMismatch(t *testing.T) {
	re := regexp.MustCompile(`^\d+$`)
	v := newValue("abc", re, nil)

	if !v.HasErrors() {
		t.Fatal("expected a regex validation error")
	}
	if !v.Errors().IsSet(ErrValueRegex) {
		t.Error("ErrValueRegex should be set")
	}
	if v.ErrorMessage() != "Invalid argument" {
		t.Errorf("message = %q, want %q", v.ErrorMessage(), "Invalid argument")
	}
}

func TestValueRegexShortCircuitsCaster(t *testing.T) {
	re := regexp.MustCompile(`^\d+$`)
	var holder int
	v := newValue("abc", re, cast.Scalar(&holder))

	if !v.Errors().IsSet(ErrValueRegex) || v.Errors().IsSet(ErrValueCast) {
		t.Error("regex failure must skip the caster")
	}
	if holder != 0 {
		t.Errorf("holder must stay untouched, got %d", holder)
	}
}

func TestValueNumericCastFailure(t *testing.T) {
	v := newValue("12x", nil, cast.Checker[int]())

	if !v.Errors().IsSet(ErrValueCast) {
		t.Error("ErrValueCast should be set")
	}
	if v.ErrorMessage() != "Invalid number" {
		t.Errorf("message = %q, want %q", v.ErrorMessage(), "Invalid number")
	}
}

func TestValuePathCastFailure(t *testing.T) {
	v := newValue("/definitely/not/here", nil, cast.Checker[cast.ExistingPath]())

	if !v.Errors().IsSet(ErrValueCast) || !v.Errors().IsSet(ErrValuePath) {
		t.Errorf("path failures must set both cast and path flags, got %v", v.Errors().Mask())
	}
	if v.ErrorMessage() == "Invalid number" {
		t.Error("path failures must keep the descriptive message")
	}
}

func TestValueCleanStoresHolder(t *testing.T) {
	var holder int
	v := newValue("42", nil, cast.Scalar(&holder))

	if v.HasErrors() {
		t.Fatalf("unexpected errors: %q", v.ErrorMessage())
	}
	if holder != 42 {
		t.Errorf("holder = %d, want 42", holder)
	}
	if v.Raw() != "42" {
		t.Errorf("Raw() = %q", v.Raw())
	}
}

func TestValueTypedAccess(t *testing.T) {
	v := newValue("0x10", nil, nil)

	n, err := ValueAs[int](v)
	if err != nil || n != 16 {
		t.Errorf("ValueAs[int] = %d, %v", n, err)
	}
	if got := ValueAsOr(v, int64(7)); got != 16 {
		t.Errorf("ValueAsOr = %v", got)
	}

	bad := newValue("nope", nil, nil)
	if got := ValueAsOr(bad, 7); got != 7 {
		t.Errorf("ValueAsOr on bad input = %d, want fallback 7", got)
	}
	out := 99
	if TryValueAs(bad, &out) {
		t.Error("TryValueAs must fail for unconvertible input")
	}
	if out != 99 {
		t.Errorf("failed TryValueAs must not touch out, got %d", out)
	}
}
