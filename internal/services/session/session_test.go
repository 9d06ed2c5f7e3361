package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecskill/rtx-cli/internal/services/session"
)

func credentialPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "credential.json")
}

func TestSetThenLoadRoundTrip(t *testing.T) {
	t.Parallel()
	path := credentialPath(t)

	store := session.NewServiceWithPath(path)
	require.NoError(t, store.Set("tok_abc"))
	assert.Equal(t, "tok_abc", store.Token())
	assert.Equal(t, session.StateAuthenticated, store.State())

	// A fresh store at the same path sees the persisted token.
	fresh := session.NewServiceWithPath(path)
	token, ok := fresh.Load()
	require.True(t, ok)
	assert.Equal(t, "tok_abc", token)
	assert.Equal(t, session.StateAuthenticated, fresh.State())
}

func TestSetRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "spaces", token: "   "},
		{name: "whitespace", token: " \t\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store := session.NewServiceWithPath(credentialPath(t))

			err := store.Set(tc.token)
			require.ErrorIs(t, err, session.ErrEmptyToken)
			assert.Empty(t, store.Token())
			assert.Equal(t, session.StateUninitialized, store.State())
		})
	}
}

func TestSetSupersedesPreviousToken(t *testing.T) {
	t.Parallel()
	path := credentialPath(t)

	store := session.NewServiceWithPath(path)
	require.NoError(t, store.Set("tok_old"))
	require.NoError(t, store.Set("tok_new"))
	assert.Equal(t, "tok_new", store.Token())

	fresh := session.NewServiceWithPath(path)
	token, ok := fresh.Load()
	require.True(t, ok)
	assert.Equal(t, "tok_new", token)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	store := session.NewServiceWithPath(credentialPath(t))

	token, ok := store.Load()
	assert.False(t, ok)
	assert.Empty(t, token)
	assert.Equal(t, session.StateAnonymous, store.State())
}

func TestLoadCorruptFile(t *testing.T) {
	t.Parallel()
	path := credentialPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not json{"), 0600))

	store := session.NewServiceWithPath(path)
	token, ok := store.Load()
	assert.False(t, ok)
	assert.Empty(t, token)
	assert.Equal(t, session.StateAnonymous, store.State())
}

func TestLoadBlankPersistedToken(t *testing.T) {
	t.Parallel()
	path := credentialPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"   "}`), 0600))

	store := session.NewServiceWithPath(path)
	_, ok := store.Load()
	assert.False(t, ok)
	assert.Equal(t, session.StateAnonymous, store.State())
}

func TestClearIsIdempotent(t *testing.T) {
	t.Parallel()
	path := credentialPath(t)

	store := session.NewServiceWithPath(path)
	require.NoError(t, store.Set("tok_abc"))

	store.Clear()
	assert.Empty(t, store.Token())
	assert.Equal(t, session.StateAnonymous, store.State())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already empty store changes nothing.
	store.Clear()
	assert.Empty(t, store.Token())
	assert.Equal(t, session.StateAnonymous, store.State())
}

func TestSetKeepsMemoryWhenPersistFails(t *testing.T) {
	t.Parallel()
	// A path inside a missing directory makes the durable write fail.
	path := filepath.Join(t.TempDir(), "no-such-dir", "credential.json")

	store := session.NewServiceWithPath(path)
	require.NoError(t, store.Set("tok_abc"))
	assert.Equal(t, "tok_abc", store.Token())
	assert.Equal(t, session.StateAuthenticated, store.State())

	// The session did not survive, but the running process kept it.
	fresh := session.NewServiceWithPath(path)
	_, ok := fresh.Load()
	assert.False(t, ok)
}

func TestCredentialFileMode(t *testing.T) {
	t.Parallel()
	path := credentialPath(t)

	store := session.NewServiceWithPath(path)
	require.NoError(t, store.Set("tok_abc"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
