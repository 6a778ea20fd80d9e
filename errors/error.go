package errors

import (
	"errors"
	"fmt"
)

// Class partitions every failure the engine can produce. The redirect-serving
// endpoint picks the user-facing message and target from this, so classes are
// machine readable and stable.
type Class string

const (
	ClassValidation          Class = "ValidationError"
	ClassConnection          Class = "ConnectionError"
	ClassGatewayRejected     Class = "GatewayRejected"
	ClassMacValidationFailed Class = "MacValidationFailed"
	ClassSecurityViolation   Class = "SecurityViolation"
	ClassThreeDSFailed       Class = "ThreeDSecureVerificationFailed"
	ClassSystem              Class = "SystemError"
)

type PaymentError struct {
	Class   Class
	Code    string
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%v [%v]: %v", e.Class, e.Code, e.Message)
	}
	return fmt.Sprintf("%v: %v", e.Class, e.Message)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

func NewValidation(message string) *PaymentError {
	return &PaymentError{Class: ClassValidation, Message: message}
}

func NewConnection(message string, err error) *PaymentError {
	return &PaymentError{Class: ClassConnection, Message: message, Err: err}
}

func NewGatewayRejected(code, message string) *PaymentError {
	return &PaymentError{Class: ClassGatewayRejected, Code: code, Message: message}
}

func NewMacValidationFailed(message string) *PaymentError {
	return &PaymentError{Class: ClassMacValidationFailed, Message: message}
}

func NewSecurityViolation(message string) *PaymentError {
	return &PaymentError{Class: ClassSecurityViolation, Message: message}
}

func NewThreeDSFailed(code, message string) *PaymentError {
	return &PaymentError{Class: ClassThreeDSFailed, Code: code, Message: message}
}

func NewSystem(message string, err error) *PaymentError {
	return &PaymentError{Class: ClassSystem, Message: message, Err: err}
}

// ClassOf extracts the classification, defaulting unknown errors to a system
// fault.
func ClassOf(err error) Class {
	var pe *PaymentError
	if errors.As(err, &pe) {
		return pe.Class
	}
	return ClassSystem
}

// IsSecurity covers the tamper-suspected classes that are always terminal and
// logged at critical severity.
func IsSecurity(err error) bool {
	c := ClassOf(err)
	return c == ClassMacValidationFailed || c == ClassSecurityViolation
}

// Retryable reports whether the caller may retry with backoff. Only
// transport-level failures qualify; MAC and verification failures never do.
func Retryable(err error) bool {
	return ClassOf(err) == ClassConnection
}

var (
	ErrOrderNotFound        = errors.New("order not found for callback")
	ErrPaidOrder            = errors.New("order has already been paid")
	ErrMissingEncryptionKey = errors.New("gateway encryption key is not configured")
)
