package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for the concrete error types below.
// Callers classify failures with errors.Is against these values.
var (
	// ErrDomainRule is the single error kind for business-rule violations.
	// Every rejected mutation of a domain object unwraps to this sentinel.
	ErrDomainRule = errors.New("domain rule violation")

	// ErrValueIsRequired marks programmer errors: a required collaborator
	// (identifier, value object) was nil or not constructed via its constructor.
	ErrValueIsRequired = errors.New("value is required")

	// ErrObjectNotFound marks absence at the persistence boundary.
	ErrObjectNotFound = errors.New("object not found")
)

// DomainRuleError is returned when a business rule rejects an operation.
// It carries a human-readable message describing the violated rule.
type DomainRuleError struct {
	Message string
	Cause   error
}

// NewDomainRuleError creates a domain rule violation with the given message.
func NewDomainRuleError(message string) *DomainRuleError {
	return &DomainRuleError{Message: message}
}

// NewDomainRuleErrorWithCause creates a domain rule violation wrapping an underlying cause.
func NewDomainRuleErrorWithCause(message string, cause error) *DomainRuleError {
	return &DomainRuleError{Message: message, Cause: cause}
}

func (e *DomainRuleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDomainRule, sanitize(e.Message), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrDomainRule, sanitize(e.Message))
}

func (e *DomainRuleError) Unwrap() error {
	return ErrDomainRule
}

// ValueIsRequiredError is returned when a required value is missing or was not
// created through its constructor. This is a precondition violation, not a
// business rule, and is never expected to be handled by domain logic.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ObjectNotFoundError is returned when an object cannot be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for an object missing from storage.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates a not-found error with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(fmt.Sprintf("%s", e.ID)), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(fmt.Sprintf("%s", e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// sanitize collapses newlines so error messages stay on one log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
