package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
)

var (
	once sync.Once
	std  *validator.Validate
)

// Configure registers JSON field names, tag aliases and domain rules on v.
func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("pwd", "min=6") // password minimum length
	v.RegisterAlias("nonzero", "required")
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseRole(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("sector", func(fl validator.FieldLevel) bool {
		return entity.IsKnownSector(entity.Sector(fl.Field().String()))
	})
}

// Init configures the global validator used by Gin's binding.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Configure(v)
	}
}

// Default returns the process-wide validator used outside of Gin binding.
func Default() *validator.Validate {
	once.Do(func() {
		std = validator.New(validator.WithRequiredStructEnabled())
		Configure(std)
	})
	return std
}

// Struct validates s with the default validator.
func Struct(s any) error {
	return Default().Struct(s)
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required", "nonzero":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "pwd":
		return "must be at least 6 characters long"
	case "role":
		return "must be one of: admin, startup, investisseur, visiteur"
	case "sector":
		names := make([]string, 0, len(entity.Sectors()))
		for _, s := range entity.Sectors() {
			names = append(names, string(s))
		}
		return "must be one of: " + strings.Join(names, ", ")
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "datetime":
		return "must match datetime format: " + param
	case "dive":
		return "array validation failed"
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", fe.Tag(), param)
		}
		return fmt.Sprintf("validation failed for '%s'", fe.Tag())
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
