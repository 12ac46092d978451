package example

import "testing"

func TestNew(t *testing.T) {
	ex, err := New("simple-tool", "Basic tool implementation", "print('hi')\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Name() != "simple-tool" || ex.Description() != "Basic tool implementation" {
		t.Errorf("unexpected example: %+v", ex)
	}
	if ex.Code() != "print('hi')\n" {
		t.Errorf("Code() = %q", ex.Code())
	}
}

func TestNew_Invalid(t *testing.T) {
	if _, err := New("", "d", "code"); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := New("x", "d", ""); err == nil {
		t.Error("expected error for empty code")
	}
}
