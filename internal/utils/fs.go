// Package utils holds small filesystem and TOML helpers shared by the
// config layer and the entry point.
package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// FileExists reports whether path names an existing file.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates the directory if it does not exist yet.
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0o755)
}

// LoadTOMLFile parses a TOML file into the provided struct.
func LoadTOMLFile(path string, v any) error {
	if _, err := toml.DecodeFile(path, v); err != nil {
		return err
	}
	return nil
}

// SaveTOMLFile writes a struct to a TOML file, replacing prior content.
func SaveTOMLFile(v any, path string) error {
	file, err := os.Create(path)
	if err != nil {
		log.Errorf("creating %s: %v", path, err)
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(v)
}

// GetAbsolutePath resolves path to an absolute form, falling back to
// the input when resolution fails.
func GetAbsolutePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
