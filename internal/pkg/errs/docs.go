// Package errs provides the typed errors shared by every layer of the parcels tool.
//
// Each error type follows the same shape:
//   - a sentinel (ErrValueIsInvalid, ErrObjectNotFound, ...) usable with errors.Is
//   - a struct carrying the details and an optional Cause
//   - NewXxx and NewXxxWithCause constructors
//   - Error() for a single-line message and Unwrap() back to the sentinel
//
// The types map onto the failure classes of the tool:
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: rejected input
//   - ObjectNotFoundError: a lookup by id, or by id and name, matched nothing
//   - ObjectIsInTerminalStateError: a transition requested on a finished delivery
//   - StorageError: the backing store could not be read, written or decoded
//   - VersionIsInvalidError: persisted data uses an unknown layout
package errs
