// Package errs provides standardized error types for the courier application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the lifecycle
// engine distinguishes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError / ValueIsOutOfRangeError: a value failed validation
//   - ObjectNotFoundError: a referenced object does not exist
//   - NotAuthorizedError: the caller may not perform the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify errors by sentinel
//
// Callers are expected to branch on the sentinels rather than on
// concrete types, which keeps transport-level error mapping (HTTP
// status codes, user-facing text) decoupled from the domain.
package errs
