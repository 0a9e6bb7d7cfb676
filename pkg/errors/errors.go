package errors

import (
	stderrors "errors"
	"fmt"
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Code returns the AppError code carried by err, or "" for plain errors.
func Code(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Common error codes
const (
	ErrCodeNoQuestions       = "NO_QUESTIONS_CONFIGURED"
	ErrCodeNoActiveSession   = "NO_ACTIVE_SESSION"
	ErrCodeGameInProgress    = "GAME_IN_PROGRESS"
	ErrCodeGameOff           = "GAME_OFF"
	ErrCodeMalformedQuestion = "MALFORMED_QUESTION_INPUT"
	ErrCodePersistence       = "PERSISTENCE_FAILURE"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)
