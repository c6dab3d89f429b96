package services

import "errors"

// Define common service errors
var (
	ErrInvalidGoogleToken = errors.New("invalid google id token")
	ErrEmailNotResolved   = errors.New("google id token carries no email")
	ErrGoogleAuthDisabled = errors.New("google sign-in is not configured")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrTokenExpired       = errors.New("access token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthError is returned when a credential is missing or rejected. Reason is safe to show
// to the client; Err is one of the sentinels above, possibly wrapping the cause.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return e.Reason + ": " + e.Err.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

func authError(reason string, err error) *AuthError {
	return &AuthError{Reason: reason, Err: err}
}
