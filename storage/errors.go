package storage

import "errors"

// Sentinel errors returned by stores and the lifecycle engine. Callers match
// them with errors.Is; the HTTP boundary maps them onto status codes.
var (
	// ErrNotFound reports that no row exists for the given id.
	ErrNotFound = errors.New("not found")

	// ErrConflict reports a stale-version write. The caller must reload and
	// retry; nothing in this module retries automatically because intent
	// cannot be re-derived from a stale snapshot.
	ErrConflict = errors.New("version conflict")

	// ErrInvalidQuery reports bad pagination, sort, or predicate parameters.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrUnavailable reports that the backing store could not be reached or
	// timed out.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrValidation is the sentinel ValidationError matches via errors.Is.
	ErrValidation = errors.New("validation failed")
)

// ValidationError wraps a field-level validation failure (ozzo-validation's
// error carries per-field detail; use errors.As to reach it).
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrValidation) match without unwrapping manually.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
