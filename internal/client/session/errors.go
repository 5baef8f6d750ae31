package session

import "errors"

var (
	// ErrTokenDecode indicates the bearer token could not be decoded to
	// extract the subject id.
	ErrTokenDecode = errors.New("token decode failed")

	// ErrProfileFetch indicates the user lookup for a decoded subject id
	// failed (network error or unknown user).
	ErrProfileFetch = errors.New("profile fetch failed")

	// ErrNotAuthenticated is returned by operations that require a
	// logged-in session.
	ErrNotAuthenticated = errors.New("not authenticated")
)
