package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// FileStore keeps credentials in a single JSON file. All I/O failures are
// swallowed per the Store contract; the in-memory copy stays authoritative
// for the lifetime of the process.
type FileStore struct {
	path string

	mu     sync.RWMutex
	values map[string]string
}

var _ Store = (*FileStore)(nil)

// NewFileStore loads any existing credential file at path. A missing,
// empty, or unreadable file starts the store empty.
func NewFileStore(path string) *FileStore {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}
	s.load()
	return s
}

func (s *FileStore) Get(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[name]
}

func (s *FileStore) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
	s.persistLocked()
}

func (s *FileStore) Clear(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	s.persistLocked()
}

func (s *FileStore) load() {
	b, err := os.ReadFile(s.path)
	if err != nil || len(b) == 0 {
		return
	}
	decoded := make(map[string]string)
	if err := json.Unmarshal(b, &decoded); err != nil {
		log.Debug().Err(err).Str("path", s.path).Msg("credential file unreadable, starting empty")
		return
	}
	s.values = decoded
}

func (s *FileStore) persistLocked() {
	b, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		log.Debug().Err(err).Str("path", s.path).Msg("credential folder not writable")
		return
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		log.Debug().Err(err).Str("path", s.path).Msg("credential write failed")
	}
}
