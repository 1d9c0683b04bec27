package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("nombre", "Ana", v)
	Required("correo", "   ", v)
	if len(v) != 1 {
		t.Fatalf("violations = %v, want exactly one", v)
	}
	if v["correo"] != "required" {
		t.Errorf("correo = %q, want required", v["correo"])
	}
	if _, ok := v["nombre"]; ok {
		t.Error("nombre flagged despite having a value")
	}
}

func TestOneOf(t *testing.T) {
	v := Violations{}
	OneOf("rol", "student", []string{"student", "teacher"}, v)
	if !v.Empty() {
		t.Errorf("valid value flagged: %v", v)
	}
	OneOf("rol", "janitor", []string{"student", "teacher"}, v)
	if v["rol"] != "invalid_value" {
		t.Errorf("rol = %q, want invalid_value", v["rol"])
	}
}

func TestMinLen(t *testing.T) {
	v := Violations{}
	MinLen("password", "ñandú", 5, v)
	if !v.Empty() {
		t.Errorf("rune count must be used, got %v", v)
	}
	MinLen("password", "abc", 5, v)
	if v["password"] != "too_short" {
		t.Errorf("password = %q, want too_short", v["password"])
	}
}
