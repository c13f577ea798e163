package port

import "errors"

// Sentinel errors shared across ports. Adapters map storage and transport
// failures onto these so usecases and handlers can branch with errors.Is.
var (
	// ErrNotFound is returned when a referenced campaign, milestone or user
	// does not exist (or a milestone does not belong to the given campaign).
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned for duplicate votes, structural changes to a
	// voted-on milestone, and replayed payment identifiers.
	ErrConflict = errors.New("conflict")

	// ErrValidation is returned for malformed input, non-positive amounts and
	// payment signature mismatches. No side effects occur.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned for missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrGateway is returned when the payment gateway rejects or fails an
	// order pass-through call. It never indicates a ledger problem.
	ErrGateway = errors.New("payment gateway error")
)
