package service

import "errors"

// Sentinel failures shared across services. Handlers translate these into
// the HTTP error taxonomy; unknown key and wrong password collapse into the
// single ErrInvalidCredentials so callers cannot enumerate accounts.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")

	ErrAdminNotFound   = errors.New("admin not found")
	ErrWardenNotFound  = errors.New("warden not found")
	ErrGuardNotFound   = errors.New("security guard not found")
	ErrStudentNotFound = errors.New("student not found")
)

// ValidationError is a request-content failure (missing/malformed fields,
// weak password, mismatched confirmation). Maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError.
func Validationf(message string) error {
	return &ValidationError{Message: message}
}

// AsValidation unwraps a *ValidationError if err carries one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
