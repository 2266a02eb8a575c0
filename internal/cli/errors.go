package cli

import (
	"errors"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/lib"
	"github.com/jonalee1/adstock-visualization/internal/usecase/preset"
)

// Exit codes returned by the curves binary
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitInvalid  = 2
	ExitNotFound = 3
)

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var ve lib.ValidationErrors
	if errors.Is(err, domain.ErrInvalidParameter) ||
		errors.Is(err, domain.ErrUnknownField) ||
		errors.Is(err, domain.ErrDegenerateDomain) ||
		errors.Is(err, errInvalidInput) ||
		errors.As(err, &ve) {
		return ExitInvalid
	}

	if errors.Is(err, preset.ErrNotFound) {
		return ExitNotFound
	}

	return ExitFailure
}
