package testing

import "testing"

func TestURLFormEqual(t *testing.T) {
	if err := URLFormEqual([]byte("Action=Select&Version=2009-04-15"), []byte("Version=2009-04-15&Action=Select")); err != nil {
		t.Errorf("expected equal, got %v", err)
	}
	if err := URLFormEqual([]byte("Action=Select"), []byte("Action=ListDomains")); err == nil {
		t.Errorf("expected error, got none")
	}
}

func TestCompareValues(t *testing.T) {
	type v struct{ A, B string }
	if err := CompareValues(v{A: "a"}, v{A: "a"}); err != nil {
		t.Errorf("expected equal, got %v", err)
	}
	if err := CompareValues(v{A: "a"}, v{B: "a"}); err == nil {
		t.Errorf("expected error, got none")
	}
}
