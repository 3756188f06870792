package flagset

import "testing"

type testFlag uint32

const (
	flagA testFlag = 1 << iota
	flagB
	flagC
)

func TestSetUnset(t *testing.T) {
	var f Flags[testFlag]

	if !f.IsEmpty() {
		t.Fatal("zero value should be empty")
	}

	f.Set(flagA, flagC)
	if !f.IsSet(flagA) || !f.IsSet(flagC) {
		t.Errorf("expected flagA and flagC set, mask=%b", f.Mask())
	}
	if f.IsSet(flagB) {
		t.Error("flagB should not be set")
	}
	if !f.IsSet(flagA | flagC) {
		t.Error("combined mask should report set")
	}
	if f.IsSet(flagA | flagB) {
		t.Error("IsSet requires every bit of the mask")
	}

	f.Unset(flagA)
	if f.IsSet(flagA) {
		t.Error("flagA should be unset")
	}
	if f.IsNotSet(flagC) {
		t.Error("flagC should still be set")
	}

	f.Clear()
	if f.IsNotEmpty() {
		t.Error("clear should empty the set")
	}
}

func TestOf(t *testing.T) {
	f := Of(flagA, flagB)
	if f.Mask() != flagA|flagB {
		t.Errorf("Of mask = %b, want %b", f.Mask(), flagA|flagB)
	}
}
