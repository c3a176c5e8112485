package application

import (
	"errors"
	"sort"
	"strings"

	"github.com/oksasatya/digitalhub/internal/domain/repository"
	"github.com/oksasatya/digitalhub/pkg/validation"
)

// Local rejections. None of these reach the backend or touch slice status.
var (
	ErrValidation            = errors.New("validation failed")
	ErrUnauthenticated       = errors.New("authentication required")
	ErrForbidden             = errors.New("not allowed for this account")
	ErrImageStoreUnavailable = errors.New("image store not configured")
)

// ValidationError lists the offending fields.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Details[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, msg string) error {
	return &ValidationError{Details: map[string]string{field: msg}}
}

func validate(in any) error {
	if err := validation.Struct(in); err != nil {
		return &ValidationError{Details: validation.ToDetails(err)}
	}
	return nil
}

// failureDetail renders a gateway failure for a slice's error field.
func failureDetail(err error) string {
	var te *repository.TransportError
	switch {
	case errors.As(err, &te) && te.Message != "":
		return te.Message
	case errors.Is(err, repository.ErrNotFound):
		return "not found"
	case errors.Is(err, repository.ErrAuthentication):
		return "invalid email or password"
	}
	return err.Error()
}
