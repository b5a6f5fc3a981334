package store

import (
	"sort"

	"github.com/arthur-debert/envman/pkg/errors"
	"github.com/arthur-debert/envman/pkg/profile"
)

// MemoryStore is an in-memory Store for tests and constructed fixtures.
// Profiles are deep-copied on the way in and out, matching the isolation
// a file-backed store provides.
type MemoryStore struct {
	profiles map[string]*profile.Profile

	// failures maps a name to the error its Read should return, so tests
	// can simulate IO and parse failures for individual records.
	failures map[string]error
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*profile.Profile),
		failures: make(map[string]error),
	}
}

// Read implements Store
func (s *MemoryStore) Read(name string) (*profile.Profile, error) {
	if err, ok := s.failures[name]; ok {
		return nil, err
	}
	p, ok := s.profiles[name]
	if !ok {
		return nil, errors.NewProfileNotFound(name)
	}
	return p.Clone(), nil
}

// List implements Store
func (s *MemoryStore) List() ([]string, error) {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Write implements Store
func (s *MemoryStore) Write(name string, p *profile.Profile) error {
	s.profiles[name] = p.Clone()
	delete(s.failures, name)
	return nil
}

// Delete implements Store
func (s *MemoryStore) Delete(name string) error {
	delete(s.profiles, name)
	delete(s.failures, name)
	return nil
}

// Rename implements Store
func (s *MemoryStore) Rename(oldName, newName string) error {
	p, ok := s.profiles[oldName]
	if !ok {
		return errors.NewProfileNotFound(oldName)
	}
	if _, ok := s.profiles[newName]; ok {
		return errors.Newf(errors.ErrInvalidInput,
			"Profile '%s' already exists.", newName)
	}
	s.profiles[newName] = p
	delete(s.profiles, oldName)
	return nil
}

// FailWith makes Read(name) return err until the record is deleted or
// rewritten, simulating a broken record on disk.
func (s *MemoryStore) FailWith(name string, err error) {
	s.failures[name] = err
}
