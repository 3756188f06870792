package cast

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

func TestToNumeric(t *testing.T) {
	if v, err := To[int]("42"); err != nil || v != 42 {
		t.Errorf("To[int](42) = %v, %v", v, err)
	}
	if v, err := To[int]("0xFF"); err != nil || v != 255 {
		t.Errorf("To[int](0xFF) = %v, %v", v, err)
	}
	if v, err := To[float64]("3.14"); err != nil || v != 3.14 {
		t.Errorf("To[float64](3.14) = %v, %v", v, err)
	}
	if v, err := To[uint16]("65535"); err != nil || v != 65535 {
		t.Errorf("To[uint16] = %v, %v", v, err)
	}
	if _, err := To[uint8]("256"); err == nil {
		t.Error("expected overflow error for uint8(256)")
	}
}

func TestArithmeticKind(t *testing.T) {
	_, err := To[int]("abc")
	if err == nil {
		t.Fatal("expected error")
	}
	castErr := &Error{}
	if !errors.As(err, &castErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if castErr.Kind != KindArithmetic {
		t.Errorf("Kind = %v, want KindArithmetic", castErr.Kind)
	}
}

func TestPathKind(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "present")
	if err := os.WriteFile(real, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if v, err := To[ExistingPath](real); err != nil || string(v) != real {
		t.Errorf("To[ExistingPath] = %v, %v", v, err)
	}

	_, err := To[ExistingPath](filepath.Join(dir, "missing"))
	castErr := &Error{}
	if !errors.As(err, &castErr) || castErr.Kind != KindPath {
		t.Errorf("expected KindPath error, got %v", err)
	}
}

func TestDomainTargets(t *testing.T) {
	id := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	if v, err := To[uuid.UUID](id); err != nil || v.String() != id {
		t.Errorf("To[uuid.UUID] = %v, %v", v, err)
	}
	if v, err := To[semver.Version]("1.2.3"); err != nil || v.Minor() != 2 {
		t.Errorf("To[semver.Version] = %v, %v", v, err)
	}
	if v, err := To[time.Duration]("1h30m"); err != nil || v != 90*time.Minute {
		t.Errorf("To[time.Duration] = %v, %v", v, err)
	}
}

func TestToOrAndTryTo(t *testing.T) {
	if v := ToOr("nope", 7); v != 7 {
		t.Errorf("ToOr fallback = %v, want 7", v)
	}
	if v := ToOr("5", 7); v != 5 {
		t.Errorf("ToOr parsed = %v, want 5", v)
	}

	var out int
	if TryTo("bad", &out) {
		t.Error("TryTo should fail on bad input")
	}
	if !TryTo("12", &out) || out != 12 {
		t.Errorf("TryTo(12) -> %v", out)
	}
}

func TestScalarCaster(t *testing.T) {
	var port int
	c := Scalar(&port)
	if err := c.Cast("8080"); err != nil || port != 8080 {
		t.Errorf("Scalar cast: port=%d err=%v", port, err)
	}
	if err := c.Cast("x"); err == nil {
		t.Error("expected error")
	}
	if port != 8080 {
		t.Error("failed cast must not overwrite holder")
	}
	c.Reset()
	if port != 0 {
		t.Errorf("Reset should restore original value, got %d", port)
	}
}

func TestAppenderCaster(t *testing.T) {
	var files []string
	c := Appender(&files)
	_ = c.Cast("a.txt")
	_ = c.Cast("b.txt")
	if len(files) != 2 || files[1] != "b.txt" {
		t.Errorf("Appender holder = %v", files)
	}
	c.Reset()
	if len(files) != 0 {
		t.Errorf("Reset should truncate holder, got %v", files)
	}
}
