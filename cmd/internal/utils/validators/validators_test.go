package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	if err := validate.RegisterValidation("cpf", IsCPF); err != nil {
		t.Fatal(err)
	}
	if err := validate.RegisterValidation("iso8601", IsIso8601); err != nil {
		t.Fatal(err)
	}
	return validate
}

func TestIsCPF(t *testing.T) {
	validate := newValidate(t)

	type payload struct {
		CPF string `validate:"cpf"`
	}

	valid := []string{"111.111.111-11", "123.456.789-09", "12345678909"}
	for _, cpf := range valid {
		if err := validate.Struct(&payload{CPF: cpf}); err != nil {
			t.Errorf("expected %q to be accepted: %v", cpf, err)
		}
	}

	invalid := []string{"", "123", "111.111.111-1", "111.111.11111", "abc.def.ghi-jk"}
	for _, cpf := range invalid {
		if err := validate.Struct(&payload{CPF: cpf}); err == nil {
			t.Errorf("expected %q to be rejected", cpf)
		}
	}
}

func TestIsIso8601(t *testing.T) {
	validate := newValidate(t)

	type payload struct {
		Data string `validate:"iso8601"`
	}

	if err := validate.Struct(&payload{Data: "2025-03-01T14:30:00Z"}); err != nil {
		t.Errorf("expected RFC3339 instant to be accepted: %v", err)
	}
	if err := validate.Struct(&payload{Data: "2025-03-01"}); err == nil {
		t.Error("expected bare date to be rejected")
	}
}
