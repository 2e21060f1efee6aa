package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrExchangeRateNotFound distinguishes a missing exchange rate from a
// missing transaction; both surface as not-found responses with different
// message text. errors.Is(ErrExchangeRateNotFound, ErrNotFound) holds.
var ErrExchangeRateNotFound = fmt.Errorf("exchange rate: %w", ErrNotFound)

// ValidationMessages carries the ordered list of business-rule violations
// detected for a single request. The order is part of the API contract.
type ValidationMessages struct {
	Messages []string
}

func (e *ValidationMessages) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Messages)
}

// Is lets errors.Is(err, ErrValidation) match a ValidationMessages value.
func (e *ValidationMessages) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationMessages wraps the collected rule-violation messages.
func NewValidationMessages(messages []string) *ValidationMessages {
	return &ValidationMessages{Messages: messages}
}

// AppError wraps an underlying failure with a status code and a safe message.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
