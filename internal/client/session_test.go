package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_FreshDirIsAnonymous(t *testing.T) {
	session, err := NewSession(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, StatusAnonymous, session.Status())
	assert.Empty(t, session.Token())
	assert.Nil(t, session.Account())
}

func TestSession_LoginPersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()

	session, err := NewSession(dir)
	require.NoError(t, err)

	account := &Account{ID: "abc", Email: "sam@example.com", Name: "Sam"}
	require.NoError(t, session.Login("signed.jwt.token", account))
	assert.Equal(t, StatusAuthenticated, session.Status())

	// A new Session over the same directory restores the saved state.
	restored, err := NewSession(dir)
	require.NoError(t, err)
	assert.Equal(t, StatusAuthenticated, restored.Status())
	assert.Equal(t, "signed.jwt.token", restored.Token())
	require.NotNil(t, restored.Account())
	assert.Equal(t, "sam@example.com", restored.Account().Email)
}

func TestSession_LogoutClearsFileAndMemory(t *testing.T) {
	dir := t.TempDir()

	session, err := NewSession(dir)
	require.NoError(t, err)
	require.NoError(t, session.Login("signed.jwt.token", &Account{ID: "abc"}))

	require.NoError(t, session.Logout())

	assert.Equal(t, StatusAnonymous, session.Status())
	_, statErr := os.Stat(filepath.Join(dir, "session.json"))
	assert.True(t, os.IsNotExist(statErr))

	// Logging out twice is fine.
	assert.NoError(t, session.Logout())
}

func TestSession_CorruptFileTreatedAsAnonymous(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("not json"), 0o600))

	session, err := NewSession(dir)
	require.NoError(t, err)
	assert.Equal(t, StatusAnonymous, session.Status())
}
