package validators

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$|^\d{11}$`)

// IsCPF accepts either the formatted "000.000.000-00" shape or 11 bare digits.
func IsCPF(fl validator.FieldLevel) bool {
	return cpfPattern.MatchString(fl.Field().String())
}

func IsIso8601(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339, fl.Field().String())
	return err == nil
}
