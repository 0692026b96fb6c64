// Package filesystem implements the JSON file registry store.
package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/Wrap-pixelz/domain-hoster/internal/boundaries/out"
	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

// Ensure RegistryFile implements out.RegistryStore.
var _ out.RegistryStore = (*RegistryFile)(nil)

// RegistryFile stores the whole registry as one pretty-printed JSON object
// keyed by domain name.
type RegistryFile struct {
	path string
	log  zerowrap.Logger
}

// NewRegistryFile creates a registry store backed by the file at path.
// The file and its directory are created on first save.
func NewRegistryFile(path string, log zerowrap.Logger) *RegistryFile {
	return &RegistryFile{
		path: expandTilde(path),
		log:  log,
	}
}

// Load reads the full registry. A missing or empty file is an empty registry.
func (s *RegistryFile) Load(_ context.Context) (domain.Registry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Registry{}, nil
		}
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return domain.Registry{}, nil
	}

	registry := domain.Registry{}
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse registry file %s: %w", s.path, err)
	}

	return registry, nil
}

// Save replaces the registry file atomically: readers see either the previous
// or the new document, never a partial one.
func (s *RegistryFile) Save(_ context.Context, registry domain.Registry) error {
	if registry == nil {
		registry = domain.Registry{}
	}

	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp registry file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write registry: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync registry file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close registry file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0640); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set registry file mode: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename registry file: %w", err)
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "filesystem").
		Str("path", s.path).
		Int(zerowrap.FieldCount, len(registry)).
		Msg("registry saved")

	return nil
}

// expandTilde replaces a leading "~/" with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path[2:])
	}
	return path
}
