package testutil

import "testing"

// mockTB captures whether a test failure occurred.
type mockTB struct {
	testing.TB // embedded for unimplemented methods
	failed     bool
}

func (m *mockTB) Helper()                           {}
func (m *mockTB) Fatal(args ...any)                 { m.failed = true }
func (m *mockTB) Fatalf(format string, args ...any) { m.failed = true }

func TestEqual(t *testing.T) {
	m := &mockTB{}

	Equal(m, 1, 1)
	if m.failed {
		t.Error("Equal(1, 1) should pass")
	}

	m.failed = false
	Equal(m, 1, 2)
	if !m.failed {
		t.Error("Equal(1, 2) should fail")
	}
}

func TestSliceEqual(t *testing.T) {
	m := &mockTB{}

	SliceEqual(m, []string{"a", "b"}, []string{"a", "b"})
	if m.failed {
		t.Error("equal slices should pass")
	}

	m.failed = false
	SliceEqual(m, []string{"a", "b"}, []string{"b", "a"})
	if !m.failed {
		t.Error("reordered slices should fail")
	}

	m.failed = false
	SliceEqual(m, []string{"a"}, nil)
	if !m.failed {
		t.Error("length mismatch should fail")
	}
}

func TestTrueFalse(t *testing.T) {
	m := &mockTB{}

	True(m, true)
	False(m, false)
	if m.failed {
		t.Error("passing assertions should not fail")
	}

	True(m, false)
	if !m.failed {
		t.Error("True(false) should fail")
	}

	m.failed = false
	False(m, true)
	if !m.failed {
		t.Error("False(true) should fail")
	}
}

func TestContains(t *testing.T) {
	m := &mockTB{}

	Contains(m, "cyclic references", "cyclic")
	if m.failed {
		t.Error("Contains should pass for substring")
	}

	m.failed = false
	Contains(m, "cyclic references", "missing")
	if !m.failed {
		t.Error("Contains should fail for absent substring")
	}
}
