package domain

import "errors"

// Sentinel errors shared across services and handlers. Handlers map these to
// HTTP status codes; services wrap them with context via fmt.Errorf and %w.
var (
	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// for local login so that responses do not enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrGoogleAccount is returned when a local login is attempted against
	// an account provisioned through Google Sign-In.
	ErrGoogleAccount = errors.New("this account was registered with Google, use Google Sign-In")

	// ErrAlreadyRegistered is returned on signup with a known email.
	ErrAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidToken means an external identity endpoint rejected the
	// presented access token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMalformedToken means a session token could not be parsed or its
	// signature could not be verified. Callers treat it as "no identity",
	// never as a request failure.
	ErrMalformedToken = errors.New("malformed token")
)
