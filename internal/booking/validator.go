package booking

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Mobile numbers: optional leading +, then at least ten digits, spaces or
// dashes. Same pattern the storefront form enforces.
var mobileNumberPattern = regexp.MustCompile(`^\+?[0-9\s-]{10,}$`)

var registerOnce sync.Once

// RegisterValidators installs the custom binding validations on gin's
// engine. Safe to call from multiple entry points (main, tests).
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
				return mobileNumberPattern.MatchString(fl.Field().String())
			})
		}
	})
}
