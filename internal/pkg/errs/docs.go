// Package errs provides the standardized error types shared across the
// application layer.
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrObjectNotFound), a struct carrying the error details, constructor
// functions with and without a cause, an Error() method for formatting and an
// Unwrap() method so errors.Is can classify wrapped errors against the
// sentinel. Lower-layer causes are attached explicitly at the boundary where
// they occur; nothing in this package converts errors implicitly.
package errs
