package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	yearRe       = regexp.MustCompile(`^\d{4}$`)
	seasonYearRe = regexp.MustCompile(`^(?i:лето|зима|весна|осень) \d{4}$`)
)

// Register wires the custom rules into gin's binding validator and makes
// field errors report JSON names. Call once at startup.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine unavailable")
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v.RegisterValidation("harvestdate", harvestDate)
}

// harvestDate accepts exactly one of: an ISO calendar date (yyyy-MM-dd), a
// bare 4-digit year, or "<сезон> <год>" with the season in Russian,
// case-insensitive. Input is trimmed first.
func harvestDate(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	return yearRe.MatchString(s) || seasonYearRe.MatchString(s)
}

// Messages converts a binding error into the field → messages map of the 400
// envelope. Returns nil when err carries no field-level detail (malformed
// JSON and the like).
func Messages(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		out[field] = append(out[field], message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Обязательное поле"
	case "email":
		return "Некорректный формат email"
	case "min":
		return fmt.Sprintf("Минимальная длина %s символов", fe.Param())
	case "max":
		return fmt.Sprintf("Максимальная длина %s символов", fe.Param())
	case "gte":
		return fmt.Sprintf("Значение не может быть меньше %s", fe.Param())
	case "eqfield":
		return "Пароли не совпадают"
	case "uuid":
		return "Некорректный идентификатор"
	case "harvestdate":
		return "Поле должно быть датой (гггг-MM-дд), годом или 'лето 2024', 'зима 2023' и т.п."
	default:
		return "Некорректное значение"
	}
}
