package client

import (
	"errors"
	"fmt"
)

const alertTitle = "Erro"

// FormError is a precondition failure caught before any network call. It is
// shown to the user as a blocking alert.
type FormError struct {
	Title   string
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

func newFormError(msg string) *FormError {
	return &FormError{Title: alertTitle, Message: msg}
}

// SubmitError is a failed booking submission. It is logged but never shown
// to the user.
type SubmitError struct {
	// StatusCode is zero when no response was received.
	StatusCode int
	Body       string
	Err        error
}

func (e *SubmitError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("submit appointment: %v", e.Err)
	}
	return fmt.Sprintf("submit appointment: status %d: %s", e.StatusCode, e.Body)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// LoginError is a failed login attempt. Message is the text of the transient
// error banner.
type LoginError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *LoginError) Error() string {
	return e.Message
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

// ShouldAlert reports whether err must be shown as a blocking alert. Login
// failures use the banner instead and submission failures stay silent.
func ShouldAlert(err error) bool {
	var formErr *FormError
	return errors.As(err, &formErr)
}

// UserMessage returns the text to show for err, or "" when err is silent.
func UserMessage(err error) string {
	var formErr *FormError
	if errors.As(err, &formErr) {
		return formErr.Message
	}
	var loginErr *LoginError
	if errors.As(err, &loginErr) {
		return loginErr.Message
	}
	return ""
}
