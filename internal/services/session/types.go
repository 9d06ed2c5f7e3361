package session

import (
	"sync"
	"time"
)

// State tracks where the store is in its lifecycle. The store starts
// uninitialized, moves through loading while the persisted credential is read,
// and then settles on authenticated or anonymous.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Credential is the persisted form of the session token.
type Credential struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at,omitempty"`
}

var _ ServiceInterface = (*Service)(nil)

// Service is the single source of truth for the session token. The token is
// single-writer, multi-reader: commands read it concurrently (quotes watch
// polls from a goroutine) while only Set and Clear mutate it.
type Service struct {
	path string

	mu    sync.RWMutex
	state State
	token string
}

// ServiceInterface is what the API client and commands depend on, so tests can
// substitute a double.
type ServiceInterface interface {
	// Load reads the persisted token. Storage errors are treated as absent;
	// it never fails.
	Load() (string, bool)
	// Set stores a non-empty token in memory and on disk.
	Set(token string) error
	// Clear removes the token from memory and disk. Idempotent.
	Clear()
	// Token returns the in-memory token, empty when anonymous.
	Token() string
	// State returns the current lifecycle state.
	State() State
}
