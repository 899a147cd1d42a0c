package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/studioforma/contact-api/internal/api/dto/common"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Closed sets for the optional enum fields
var (
	ProjectTypes = []string{"website", "ecommerce", "webapp", "branding", "consulting", "other"}
	BudgetRanges = []string{"under-5k", "5k-10k", "10k-25k", "25k-50k", "over-50k"}
)

var registerOnce sync.Once

// RegisterDefault wires the custom validators into Gin's binding engine.
// Safe to call multiple times; the composition root and tests both use it.
func RegisterDefault() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterValidators(v)
		}
	})
}

// RegisterValidators registers custom validators and the json tag name lookup
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("projecttype", oneOf(ProjectTypes))
	v.RegisterValidation("budgetrange", oneOf(BudgetRanges))

	// Report field names the way clients sent them
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

// FormatValidationError turns validator errors into field-level messages
// suitable for the API response
func FormatValidationError(err error) []common.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	out := make([]common.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, common.FieldError{
			Field:   e.Field(),
			Message: messageFor(e),
		})
	}
	return out
}

func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "projecttype":
		return fmt.Sprintf("must be one of: %s", strings.Join(ProjectTypes, ", "))
	case "budgetrange":
		return fmt.Sprintf("must be one of: %s", strings.Join(BudgetRanges, ", "))
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
