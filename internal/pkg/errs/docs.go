// Package errs provides standardized error types for the order desk.
// Every error type pairs a sentinel (for errors.Is) with a struct carrying
// the offending parameter, so adapters can classify failures without
// parsing messages.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: a looked-up object does not exist
//
// Each type has a plain constructor and a ...WithCause variant that records
// the underlying reason in the message.
package errs
