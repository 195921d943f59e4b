package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"augebit/internal/entities"
)

// SessionKey is the single key under which the logged-in user is stored.
const SessionKey = "usuarioLogado"

const defaultDisplayName = "Usuário"

// Session identifies the logged-in employee. A nil *Session means nobody is
// logged in; its methods still return the anonymous defaults.
type Session struct {
	User entities.User
}

func (s *Session) DisplayName() string {
	if s == nil || s.User.Nome == "" {
		return defaultDisplayName
	}
	return s.User.Nome
}

// Initial is the upper-cased first letter of the display name.
func (s *Session) Initial() string {
	r, _ := utf8.DecodeRuneInString(s.DisplayName())
	return string(unicode.ToUpper(r))
}

func (s *Session) WelcomeMessage() string {
	return fmt.Sprintf("Bem-vindo, %s!", s.DisplayName())
}

type SessionStore interface {
	Save(*Session) error
	// Load returns nil, nil when no session is stored.
	Load() (*Session, error)
	Clear() error
}

type MemorySessionStore struct {
	mu      sync.Mutex
	session *Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (m *MemorySessionStore) Save(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s == nil {
		m.session = nil
		return nil
	}
	cp := *s
	m.session = &cp
	return nil
}

func (m *MemorySessionStore) Load() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, nil
	}
	cp := *m.session
	return &cp, nil
}

func (m *MemorySessionStore) Clear() error {
	return m.Save(nil)
}

// FileSessionStore keeps the user as JSON in <dir>/usuarioLogado.json.
type FileSessionStore struct {
	path string
}

func NewFileSessionStore(dir string) *FileSessionStore {
	return &FileSessionStore{path: filepath.Join(dir, SessionKey+".json")}
}

// Save writes the user through a temp file so a crash never leaves a
// truncated session behind.
func (f *FileSessionStore) Save(s *Session) error {
	if s == nil {
		return f.Clear()
	}
	data, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), SessionKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (f *FileSessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var user entities.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &Session{User: user}, nil
}

func (f *FileSessionStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
