package lib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var goValidator = validator.New()

// ValidationErrors collects one message per failed field
type ValidationErrors struct {
	Errors []string `json:"errors"`
}

func (ve ValidationErrors) Error() string {
	if len(ve.Errors) == 0 {
		return "no validation errors"
	}

	return strings.Join(ve.Errors, "; ")
}

// ValidateStruct validates s against its validate tags. Returns nil when s is valid.
func ValidateStruct(s any) error {
	err := goValidator.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := ValidationErrors{}
	for _, e := range ve {
		if e.Param() != "" {
			out.Errors = append(out.Errors, fmt.Sprintf("%s must satisfy %s=%s (got %v)", e.Namespace(), e.ActualTag(), e.Param(), e.Value()))
			continue
		}
		out.Errors = append(out.Errors, fmt.Sprintf("%s must satisfy %s", e.Namespace(), e.ActualTag()))
	}
	return out
}
