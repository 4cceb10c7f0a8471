package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the name of the preference file in the user's home directory.
const DefaultFileName = "weather-data.json"

// Store is the contract both the file-backed and the in-memory stores satisfy.
type Store interface {
	Get(key string) (Value, bool, error)
	Set(key string, value Value) error
}

// FileStore keeps the preference document in a single JSON file. Every call
// reads the whole file; every Set rewrites it. Nothing is cached between calls,
// so concurrent processes race and the last full write wins.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns $HOME/weather-data.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (Value, bool, error) {
	doc, err := s.load()
	if err != nil {
		return Value{}, false, err
	}
	v, ok := doc[key]
	if !ok {
		return Value{}, false, nil
	}
	return v, true, nil
}

// Set loads the document, replaces key and persists the full document.
func (s *FileStore) Set(key string, value Value) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc[key] = value.clone()
	return s.persist(doc)
}

func (s *FileStore) load() (Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Document{}, nil
		}
		return nil, &StoreWriteError{Path: s.path, Err: err}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &CorruptStoreError{Path: s.path, Err: errors.New("top-level value is not a JSON object")}
	}

	doc := Document{}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, &CorruptStoreError{Path: s.path, Err: err}
	}
	return doc, nil
}

// persist writes doc to a temporary sibling and renames it over the target.
func (s *FileStore) persist(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &StoreWriteError{Path: s.path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return &StoreWriteError{Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StoreWriteError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StoreWriteError{Path: s.path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return &StoreWriteError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &StoreWriteError{Path: s.path, Err: err}
	}
	return nil
}
