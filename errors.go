package gdacs

import "errors"

// Sentinel error kinds. Callers branch on recoverability with errors.Is:
// ErrInvalidParameter failures are the caller's to fix and are raised before
// any network call; ErrAPIUnavailable failures come from the upstream API and
// are not retried by the client.
var (
	// ErrInvalidParameter marks malformed caller input: an enum value outside
	// its allow-list or a missing/unparseable WKT geometry.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAPIUnavailable marks an upstream failure: an unreachable host or a
	// response status outside the operation's success set.
	ErrAPIUnavailable = errors.New("gdacs api unavailable")

	// ErrEventNotFound marks a 404 from the event-data endpoint. Errors
	// carrying it also match ErrAPIUnavailable.
	ErrEventNotFound = errors.New("event not found")
)
