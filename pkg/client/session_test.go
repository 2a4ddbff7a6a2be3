package client_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabboard/pkg/client"
)

func TestMemorySessionStore(t *testing.T) {
	store := client.NewMemorySessionStore()

	_, err := store.Load()
	assert.ErrorIs(t, err, client.ErrNoSession)

	session := &client.Session{
		Token:     "abc",
		Role:      "student",
		UserID:    7,
		Email:     "ayesha@student.edu",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(session))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, session.Token, loaded.Token)
	assert.True(t, loaded.Valid())

	// The store hands out copies, not the caller's pointer.
	loaded.Token = "mutated"
	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", again.Token)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, client.ErrNoSession)
}

func TestFileSessionStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	store := client.NewFileSessionStore(path)

	_, err := store.Load()
	assert.ErrorIs(t, err, client.ErrNoSession)

	session := &client.Session{
		Token:     "tok",
		Role:      "teacher",
		UserID:    3,
		Email:     "imran@faculty.edu",
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, store.Save(session))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", loaded.Token)
	assert.Equal(t, "teacher", loaded.Role)
	assert.Equal(t, int64(3), loaded.UserID)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, client.ErrNoSession)

	// Clearing again is a no-op.
	require.NoError(t, store.Clear())
}

func TestSessionValid(t *testing.T) {
	assert.False(t, (&client.Session{}).Valid())
	assert.False(t, (&client.Session{Token: "t", ExpiresAt: time.Now().Add(-time.Minute)}).Valid())
	assert.True(t, (&client.Session{Token: "t", ExpiresAt: time.Now().Add(time.Minute)}).Valid())

	var nilSession *client.Session
	assert.False(t, nilSession.Valid())
}
