package apperror

import "net/http"

// Kind classifies an AppError for logging and dispatch outcomes
type Kind string

const (
	KindValidation Kind = "validation"
	KindDispatch   Kind = "dispatch"
	KindInternal   Kind = "internal"
	KindBadRequest Kind = "bad_request"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindBadRequest, message, nil)
}

// Validation is a visitor-correctable failure; message is shown as-is
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

// Dispatch wraps a transport failure behind a generic visitor-facing message
func Dispatch(message string, err error) *AppError {
	return New(http.StatusInternalServerError, KindDispatch, message, err)
}

func Internal(message string, err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, message, err)
}
