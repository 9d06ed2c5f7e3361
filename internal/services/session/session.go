package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/tecskill/rtx-cli/common/appdir"
	"github.com/tecskill/rtx-cli/common/logger"
)

const credentialFileName = "credential.json"

// ErrEmptyToken is returned by Set when the token is empty or whitespace-only.
var ErrEmptyToken = eris.New("session token must not be empty")

// NewService creates a session store persisting under the user config dir.
func NewService() (*Service, error) {
	if err := appdir.Setup(); err != nil {
		return nil, eris.Wrap(err, "failed to set up config dir")
	}
	dir, err := appdir.Dir()
	if err != nil {
		return nil, eris.Wrap(err, "failed to get config dir")
	}
	return NewServiceWithPath(filepath.Join(dir, credentialFileName)), nil
}

// NewServiceWithPath creates a session store persisting at an explicit path.
// Used by tests to point the store at a temp dir.
func NewServiceWithPath(path string) *Service {
	return &Service{
		path:  path,
		state: StateUninitialized,
	}
}

// Load reads the persisted token, if any. A missing, unreadable, or corrupt
// credential file all resolve to anonymous; the store never fails to load.
func (s *Service) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateLoading

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debugf("failed to read credential file: %v", err)
		}
		s.state = StateAnonymous
		return "", false
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		logger.Debugf("failed to parse credential file: %v", err)
		s.state = StateAnonymous
		return "", false
	}

	if strings.TrimSpace(cred.Token) == "" {
		s.state = StateAnonymous
		return "", false
	}

	s.token = cred.Token
	s.state = StateAuthenticated
	return s.token, true
}

// Set stores the token. Memory is updated first; a failed durable write only
// costs persistence across launches, so it is logged rather than surfaced.
// Setting a new token supersedes any prior one.
func (s *Service) Set(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.state = StateAuthenticated

	if err := s.persist(token); err != nil {
		logger.Errors(eris.Wrap(err, "failed to persist session token; session will not survive restart"))
	}
	return nil
}

// Clear removes the token from memory and disk. Clearing an already empty
// store is a no-op.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.state = StateAnonymous

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		logger.Debugf("failed to remove credential file: %v", err)
	}
}

// Token returns the in-memory token.
func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// State returns the current lifecycle state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Service) persist(token string) error {
	cred := Credential{
		Token:   token,
		SavedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(cred)
	if err != nil {
		return eris.Wrap(err, "failed to marshal credential")
	}

	return os.WriteFile(s.path, data, 0600)
}
