package domain

import "errors"

// Sentinel errors for the authorization ladder. Handlers map these to HTTP
// status codes; everything else is an internal failure.
var (
	// ErrUnauthenticated means no caller identity was present on the request.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnauthorized means the caller is authenticated but does not own the
	// store targeted by the request.
	ErrUnauthorized = errors.New("unauthorized")
)

// NotFoundError reports that a referenced resource does not exist. Resource is
// the user-facing entity name ("Billboard", "Product").
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError reports a referential-integrity conflict: the target still has
// dependent records. Reason is the full user-facing message.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}
