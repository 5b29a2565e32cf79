package services

import "errors"

// Typed outcomes of the swap lifecycle. Handlers map these onto HTTP status
// codes; none of them carry transient-failure semantics except
// ErrStoreUnavailable.
var (
	// ErrInvalidInput covers malformed lifecycle calls, e.g. a self-swap.
	ErrInvalidInput = errors.New("invalid swap request input")

	// ErrReceiverNotFound means the addressed user has no skill profile.
	ErrReceiverNotFound = errors.New("receiver profile not found")

	// ErrRequestNotFound means the swap request does not exist.
	ErrRequestNotFound = errors.New("swap request not found")

	// ErrNotAuthorized means the acting user may not decide this request.
	ErrNotAuthorized = errors.New("not authorized to act on this swap request")

	// ErrAlreadyProcessed means the request already reached a terminal status.
	// A losing side of a concurrent accept/reject race observes this.
	ErrAlreadyProcessed = errors.New("swap request already processed")

	// ErrStoreUnavailable wraps generic persistence failures.
	ErrStoreUnavailable = errors.New("request store unavailable")
)
