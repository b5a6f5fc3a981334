package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/envman/pkg/errors"
	"github.com/arthur-debert/envman/pkg/logging"
	"github.com/arthur-debert/envman/pkg/profile"
)

const (
	// AppDirName is the directory name for envman files under XDG config
	AppDirName = "envman"

	// ProfilesDirName is the subdirectory holding one TOML file per profile
	ProfilesDirName = "profiles"

	// GlobalFileName holds the global profile, outside the profiles dir
	GlobalFileName = "global.toml"

	profileExt = ".toml"
)

// FileStore stores each profile as <base>/profiles/<name>.toml, with the
// global profile at <base>/global.toml.
type FileStore struct {
	basePath string
}

// DefaultBasePath returns the standard store location,
// $XDG_CONFIG_HOME/envman.
func DefaultBasePath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// NewFileStore creates a file store rooted at basePath, creating the
// profiles directory if needed. An empty basePath uses the default
// location.
func NewFileStore(basePath string) (*FileStore, error) {
	if basePath == "" {
		basePath = DefaultBasePath()
	}
	if err := os.MkdirAll(filepath.Join(basePath, ProfilesDirName), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrProfileIO,
			"failed to create profile directory under %s", basePath)
	}

	logger := logging.GetLogger("store")
	logger.Debug().
		Str("basePath", basePath).
		Msg("File store opened")

	return &FileStore{basePath: basePath}, nil
}

// BasePath returns the store's root directory
func (s *FileStore) BasePath() string {
	return s.basePath
}

func (s *FileStore) profilePath(name string) string {
	return filepath.Join(s.basePath, ProfilesDirName, name+profileExt)
}

// Read implements Store
func (s *FileStore) Read(name string) (*profile.Profile, error) {
	content, err := os.ReadFile(s.profilePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewProfileNotFound(name)
		}
		return nil, errors.Wrapf(err, errors.ErrProfileIO,
			"failed to read profile '%s'", name)
	}

	var p profile.Profile
	if err := toml.Unmarshal(content, &p); err != nil {
		return nil, errors.Wrapf(err, errors.ErrProfileParse,
			"failed to parse profile '%s'", name)
	}
	return &p, nil
}

// List implements Store
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.basePath, ProfilesDirName))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProfileIO,
			"failed to list profile directory")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), profileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), profileExt))
	}
	return names, nil
}

// Write implements Store
func (s *FileStore) Write(name string, p *profile.Profile) error {
	content, err := toml.Marshal(p)
	if err != nil {
		return errors.Wrapf(err, errors.ErrProfileParse,
			"failed to encode profile '%s'", name)
	}
	if err := os.WriteFile(s.profilePath(name), content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrProfileIO,
			"failed to write profile '%s'", name)
	}
	return nil
}

// Delete implements Store
func (s *FileStore) Delete(name string) error {
	err := os.Remove(s.profilePath(name))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrProfileIO,
			"failed to delete profile '%s'", name)
	}
	return nil
}

// Rename implements Store
func (s *FileStore) Rename(oldName, newName string) error {
	oldPath := s.profilePath(oldName)
	newPath := s.profilePath(newName)

	if _, err := os.Stat(oldPath); os.IsNotExist(err) {
		return errors.NewProfileNotFound(oldName)
	}
	if _, err := os.Stat(newPath); err == nil {
		return errors.Newf(errors.ErrInvalidInput,
			"Profile '%s' already exists.", newName)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return errors.Wrapf(err, errors.ErrProfileIO,
			"failed to rename profile '%s' to '%s'", oldName, newName)
	}
	return nil
}

// ReadGlobal returns the global profile, or an empty profile when the
// global file is missing or blank.
func (s *FileStore) ReadGlobal() (*profile.Profile, error) {
	content, err := os.ReadFile(filepath.Join(s.basePath, GlobalFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return profile.New(), nil
		}
		return nil, errors.Wrap(err, errors.ErrProfileIO,
			"failed to read global profile")
	}
	if strings.TrimSpace(string(content)) == "" {
		return profile.New(), nil
	}

	var p profile.Profile
	if err := toml.Unmarshal(content, &p); err != nil {
		return nil, errors.Wrap(err, errors.ErrProfileParse,
			"failed to parse global profile")
	}
	return &p, nil
}

// WriteGlobal stores the global profile
func (s *FileStore) WriteGlobal(p *profile.Profile) error {
	content, err := toml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, errors.ErrProfileParse,
			"failed to encode global profile")
	}
	if err := os.WriteFile(filepath.Join(s.basePath, GlobalFileName), content, 0644); err != nil {
		return errors.Wrap(err, errors.ErrProfileIO,
			"failed to write global profile")
	}
	return nil
}
