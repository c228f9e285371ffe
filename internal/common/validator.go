package common

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phoneRegexp accepts international and local formats with common
// separators, e.g. "+62 812-3456-7890" or "0812 3456 7890"
var phoneRegexp = regexp.MustCompile(`^\+?[0-9][0-9\s\-.()]{6,19}$`)

// RegisterValidators installs custom binding validators on gin's
// validator engine. Call once at startup, before routes are served.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	})
}
