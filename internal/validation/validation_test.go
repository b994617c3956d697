package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func engine(t *testing.T) *validator.Validate {
	t.Helper()
	if err := Register(); err != nil {
		t.Fatalf("Register: %v", err)
	}
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("binding validator engine unavailable")
	}
	return v
}

func TestHarvestDate(t *testing.T) {
	v := engine(t)

	accepted := []string{
		"",
		"2024-01-15",
		"2024",
		"лето 2024",
		"Зима 2023",
		"ВЕСНА 2020",
		"осень 1999",
		"  2024  ", // trimmed before matching
	}
	for _, s := range accepted {
		if err := v.Var(s, "harvestdate"); err != nil {
			t.Errorf("%q rejected: %v", s, err)
		}
	}

	rejected := []string{
		"15-01-2024",
		"2024-02-30", // not a real calendar date
		"24",
		"20245",
		"spring 2024",
		"лето",
		"лето2024",
		"лето 24",
	}
	for _, s := range rejected {
		if err := v.Var(s, "harvestdate"); err == nil {
			t.Errorf("%q accepted, want rejection", s)
		}
	}
}

func TestMessagesUseJSONNamesAndRussianText(t *testing.T) {
	v := engine(t)

	type form struct {
		FirstName       string `json:"firstName" binding:"required,min=2"`
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required,min=6"`
		ConfirmPassword string `json:"confirmPassword" binding:"eqfield=Password"`
		Year            string `json:"yearCollection" binding:"omitempty,harvestdate"`
	}
	err := v.Struct(form{
		FirstName:       "И",
		Email:           "not-an-email",
		Password:        "секрет",
		ConfirmPassword: "другое",
		Year:            "spring",
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	msgs := Messages(err)
	want := map[string]string{
		"firstName":       "Минимальная длина 2 символов",
		"email":           "Некорректный формат email",
		"confirmPassword": "Пароли не совпадают",
	}
	for field, text := range want {
		got := msgs[field]
		if len(got) == 0 {
			t.Fatalf("no message for %q: %v", field, msgs)
		}
		if got[0] != text {
			t.Errorf("%s message = %q, want %q", field, got[0], text)
		}
	}
	if len(msgs["yearCollection"]) == 0 {
		t.Fatalf("no message for yearCollection: %v", msgs)
	}
	if _, exported := msgs["FirstName"]; exported {
		t.Fatal("field keys must come from json tags, not Go names")
	}
}

func TestMessagesNilForNonFieldErrors(t *testing.T) {
	if msgs := Messages(errNotValidation{}); msgs != nil {
		t.Fatalf("msgs = %v, want nil", msgs)
	}
}

type errNotValidation struct{}

func (errNotValidation) Error() string { return "broken json" }
