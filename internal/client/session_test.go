package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"augebit/internal/entities"
)

func TestSessionDefaults(t *testing.T) {
	var s *Session
	assert.Equal(t, "Usuário", s.DisplayName())
	assert.Equal(t, "U", s.Initial())
	assert.Equal(t, "Bem-vindo, Usuário!", s.WelcomeMessage())

	s = &Session{User: entities.User{Nome: "éric"}}
	assert.Equal(t, "É", s.Initial())
}

func TestFileSessionStore(t *testing.T) {
	dir := t.TempDir()
	store := NewFileSessionStore(dir)

	s, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, s)

	user := entities.User{ID: 3, Email: "ana@augebit.com", Nome: "Ana", Setor: "RH"}
	require.NoError(t, store.Save(&Session{User: user}))

	_, err = os.Stat(filepath.Join(dir, "usuarioLogado.json"))
	require.NoError(t, err)

	loaded, err := NewFileSessionStore(dir).Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, user, loaded.User)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	s, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestFileSessionStoreCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "usuarioLogado.json"), []byte("{nope"), 0o600))

	_, err := NewFileSessionStore(dir).Load()
	assert.Error(t, err)

	c := New("http://unused", WithSessionStore(NewFileSessionStore(dir)))
	assert.Nil(t, c.CurrentSession())
}
