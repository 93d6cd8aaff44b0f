// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: domain validation failures
//   - ObjectNotFoundError: a lookup that matched nothing
//   - BadInputError: a request the current stored state cannot satisfy (illegal
//     status transition, line item admission refused, unknown id)
//   - ProviderFailureError: the storage layer failed or returned an impossible row count
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrBadInput)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Bad input is never retried by this service. Provider failures are never
// swallowed; they surface to the transport layer as internal errors.
package errs
