package api

import "github.com/rotisserie/eris"

var (
	// ErrUnauthenticated is returned before any network I/O when an
	// authenticated call is attempted without an active session.
	ErrUnauthenticated = eris.New("no active session")

	// ErrEmptyCredentials is returned by Login when username or password is
	// empty. The gateway does not trim input; that is the caller's job.
	ErrEmptyCredentials = eris.New("username and password are required")
)
