// Package filesystem routes every file access through a swappable afero backend,
// so tests can run against memory instead of the user's disk.
package filesystem

import (
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to an empty in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

func ReadFile(path string) ([]byte, error) {
	return backend.ReadFile(path)
}

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if err := backend.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return backend.WriteFile(path, data, 0o644)
}

// Glob returns the paths matching pattern, sorted.
func Glob(pattern string) ([]string, error) {
	return afero.Glob(backend.Fs, pattern)
}
