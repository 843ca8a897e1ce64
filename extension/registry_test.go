package extension

import (
	"slices"
	"testing"

	"github.com/spf13/cobra"
)

// testExtension is a minimal Extension implementation for testing.
type testExtension struct {
	name string
}

func (e testExtension) Name() string               { return e.name }
func (e testExtension) Commands() []*cobra.Command { return nil }

func TestRegister_PanicOnDuplicate(t *testing.T) {
	// Register with a unique name for this test
	name := "test-duplicate-panic"
	Register(testExtension{name: name})

	// Registering the same name again should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration, got none")
		}
	}()

	Register(testExtension{name: name})
}

func TestAll_PreservesRegistrationOrder(t *testing.T) {
	first, second := "test-order-first", "test-order-second"
	Register(testExtension{name: first})
	Register(testExtension{name: second})

	names := Names()
	fi := slices.Index(names, first)
	si := slices.Index(names, second)
	if fi < 0 || si < 0 {
		t.Fatalf("registered extensions missing from Names(): %v", names)
	}
	if fi > si {
		t.Errorf("registration order not preserved: %q at %d, %q at %d", first, fi, second, si)
	}

	if len(All()) != len(names) {
		t.Errorf("All() returned %d extensions, Names() returned %d", len(All()), len(names))
	}
}
