// Package store defines the durable profile store boundary and its two
// implementations: a TOML file store rooted in the XDG config directory
// and an in-memory store for tests and fixtures.
//
// The store owns individual records only. Dependency semantics (graph,
// resolution, lazy loading) live above it and never touch storage
// directly.
package store

import (
	"github.com/arthur-debert/envman/pkg/profile"
)

// Store is the durable map of name -> profile the loader reads from.
type Store interface {
	// Read returns the stored profile for name. Fails PROFILE_NOT_FOUND
	// when no record exists, PROFILE_IO on read failures and
	// PROFILE_PARSE when the record cannot be decoded.
	Read(name string) (*profile.Profile, error)

	// List returns the names of every stored profile.
	List() ([]string, error)

	// Write stores the profile under name, overwriting any existing
	// record.
	Write(name string, p *profile.Profile) error

	// Delete removes the record for name. Deleting an absent record is a
	// no-op.
	Delete(name string) error

	// Rename moves the record from oldName to newName. Fails
	// PROFILE_NOT_FOUND when oldName is absent and INVALID_INPUT when
	// newName already exists.
	Rename(oldName, newName string) error
}
