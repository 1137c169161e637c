// Package errs provides standardized error types for the sales order application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure categories the domain knows about:
//   - DomainRuleError: the single kind for business-rule violations, carrying a
//     human-readable message
//   - ValueIsRequiredError: for when a required value or collaborator is missing
//     (a programmer error, not a business failure)
//   - ObjectNotFoundError: for when an object cannot be found in storage
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrDomainRule)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
