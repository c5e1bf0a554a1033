package msg

import (
	"errors"
	"testing"
)

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	typ, err := reg.Register(Error, 5, "missing-anchor")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if typ.Level != Error || typ.Code != 5 || typ.Name != "missing-anchor" {
		t.Errorf("Register() = %+v, want {Error 5 missing-anchor}", typ)
	}
	if got := typ.String(); got != "E-0005:missing-anchor" {
		t.Errorf("String() = %q, want %q", got, "E-0005:missing-anchor")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	reg := NewRegistry()
	first := reg.MustRegister(Error, 1, "xml-schema-parser")

	_, err := reg.Register(Warning, 2, "xml-schema-parser")
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("Register() error = %v, want DuplicateNameError", err)
	}
	if dup.Existing != first {
		t.Errorf("error reports existing type %v, want %v", dup.Existing, first)
	}

	// the failed registration must not have mutated the registry
	if reg.Len() != 1 {
		t.Errorf("Len() = %d after failed registration, want 1", reg.Len())
	}
	if _, err := reg.ByCode(2); err == nil {
		t.Error("code 2 was registered despite the name collision")
	}
}

func TestRegistry_DuplicateCode(t *testing.T) {
	reg := NewRegistry()
	first := reg.MustRegister(Error, 3, "duplicate-anchor")

	_, err := reg.Register(Error, 3, "something-else")
	var dup *DuplicateCodeError
	if !errors.As(err, &dup) {
		t.Fatalf("Register() error = %v, want DuplicateCodeError", err)
	}
	if dup.Existing != first {
		t.Errorf("error reports existing type %v, want %v", dup.Existing, first)
	}
	if _, err := reg.ByName("something-else"); err == nil {
		t.Error("name was registered despite the code collision")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry()
	typ := reg.MustRegister(Convention, 6, "anchor-style")

	byName, err := reg.ByName("anchor-style")
	if err != nil || byName != typ {
		t.Errorf("ByName() = %v, %v, want %v, nil", byName, err, typ)
	}
	byCode, err := reg.ByCode(6)
	if err != nil || byCode != typ {
		t.Errorf("ByCode() = %v, %v, want %v, nil", byCode, err, typ)
	}

	var notFound *NotFoundError
	if _, err := reg.ByName("nope"); !errors.As(err, &notFound) {
		t.Errorf("ByName(nope) error = %v, want NotFoundError", err)
	}
	if _, err := reg.ByCode(99); !errors.As(err, &notFound) {
		t.Errorf("ByCode(99) error = %v, want NotFoundError", err)
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		code     int
		typeName string
		expected string
	}{
		{"error", Error, 5, "missing-anchor", "E-0005:missing-anchor"},
		{"warning", Warning, 42, "odd-revision", "W-0042:odd-revision"},
		{"convention", Convention, 6, "anchor-style", "C-0006:anchor-style"},
		{"wide code", Error, 12345, "big", "E-12345:big"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := &Type{Level: tt.level, Code: tt.code, Name: tt.typeName}
			if got := typ.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLevel_Order(t *testing.T) {
	if !(Convention < Warning && Warning < Error) {
		t.Error("severity levels are not ordered Convention < Warning < Error")
	}
}
