package apperrors

import "fmt"

// AppError carries an HTTP status code alongside the message so services
// can decide the failure class without the handlers re-classifying errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Details returns the wrapped cause as text for the error envelope,
// empty when there is none.
func (e *AppError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
