// pkg/store/memstore_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the in-memory profile store used for fixtures

package store_test

import (
	"testing"

	"github.com/arthur-debert/envman/pkg/errors"
	"github.com/arthur-debert/envman/pkg/profile"
	"github.com/arthur-debert/envman/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreIsolation(t *testing.T) {
	s := store.NewMemoryStore()

	p := profile.New()
	p.SetVariable("EDITOR", "vim")
	require.NoError(t, s.Write("work", p))

	// Mutating the original after Write must not affect the store.
	p.SetVariable("EDITOR", "code")

	got, err := s.Read("work")
	require.NoError(t, err)
	assert.Equal(t, "vim", got.Variables["EDITOR"])

	// Mutating the read copy must not affect the store either.
	got.SetVariable("EDITOR", "nano")
	again, err := s.Read("work")
	require.NoError(t, err)
	assert.Equal(t, "vim", again.Variables["EDITOR"])
}

func TestMemoryStoreListSorted(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Write("zsh", profile.New()))
	require.NoError(t, s.Write("base", profile.New()))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "zsh"}, names)
}

func TestMemoryStoreFailWith(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Write("broken", profile.New()))

	ioErr := errors.Wrap(assert.AnError, errors.ErrProfileIO, "simulated")
	s.FailWith("broken", ioErr)

	_, err := s.Read("broken")
	assert.True(t, errors.IsErrorCode(err, errors.ErrProfileIO))

	// Rewriting clears the failure.
	require.NoError(t, s.Write("broken", profile.New()))
	_, err = s.Read("broken")
	assert.NoError(t, err)
}

func TestMemoryStoreRename(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Write("old", profile.New()))

	require.NoError(t, s.Rename("old", "new"))

	_, err := s.Read("new")
	assert.NoError(t, err)
	_, err = s.Read("old")
	assert.True(t, errors.IsErrorCode(err, errors.ErrProfileNotFound))

	err = s.Rename("ghost", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrProfileNotFound))
}
