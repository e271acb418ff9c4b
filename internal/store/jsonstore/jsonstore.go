// Package jsonstore persists the record list as a single JSON file.
// Human-readable, portable, replaced wholesale on every mutation.
// No locking; fine for a local single-user CLI.
package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/lungarella-raffaele/marc/internal/model"
)

// Version identifies the store file layout.
const Version = 1

var (
	// ErrCorrupted means the store file is not valid JSON.
	ErrCorrupted = errors.New("store file corrupted")
	// ErrInvalidStore means the JSON does not match the store schema.
	ErrInvalidStore = errors.New("store file invalid")
)

// File is the persisted store document: an ordered record list plus
// a small tag vocabulary.
type File struct {
	Version int            `json:"version"`
	Tags    []string       `json:"tags,omitempty"`
	Records []model.Record `json:"records"`
}

// Store reads and writes one store file at a fixed path. The path is
// injected by the caller; the package holds no ambient state.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the persisted store. A missing file yields an empty store.
func (s *Store) Load() (*File, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{Version: Version}, nil
		}
		return nil, errors.Wrap(err, "read store")
	}
	if err := validate(b); err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrapf(ErrCorrupted, "%s: %v", s.path, err)
	}
	return &f, nil
}

// Save overwrites the store with f. The bytes go to a temp file in the
// same directory, then rename over the target, so a crash mid-write
// never leaves a partial store behind.
func (s *Store) Save(f *File) error {
	if f.Version == 0 {
		f.Version = Version
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal store")
	}
	b = append(b, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "create store dir")
	}
	tmp, err := os.CreateTemp(dir, ".marc-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp store")
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "write temp store")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "close temp store")
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "chmod temp store")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "replace store")
	}
	return nil
}
