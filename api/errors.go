package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// errorEnvelope replaces Huma's default RFC 7807 error model so every error
// response uses the same {success:false, message} envelope as success
// responses. Wrapped causes stay server-side; they are logged, not sent.
type errorEnvelope struct {
	status  int
	errs    []error
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e *errorEnvelope) Error() string {
	return e.Message
}

func (e *errorEnvelope) GetStatus() int {
	return e.status
}

func (e *errorEnvelope) Unwrap() []error {
	return e.errs
}

func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		return &errorEnvelope{
			status:  status,
			errs:    errs,
			Success: false,
			Message: message,
		}
	}
}
