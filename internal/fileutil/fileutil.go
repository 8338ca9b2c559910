// Package fileutil provides the output directory and file helpers of a run.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Permissions for created output.
const (
	DirPerm  os.FileMode = 0o750
	FilePerm os.FileMode = 0o644
)

// ErrNotDirectory indicates a path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// EnsureDir creates dir and its parents if absent.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(dir, DirPerm)
}

// WriteFile writes content to path, replacing any existing file.
func WriteFile(path, content string) error {
	// #nosec G306 -- published pages are meant to be world readable
	return os.WriteFile(path, []byte(content), FilePerm)
}

// FileSize returns the size in bytes of the regular file at path.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}
	return info.Size(), nil
}

// CheckWritable reports whether files can be created in dir by creating and
// removing a probe file.
func CheckWritable(dir string) error {
	probe, err := os.CreateTemp(dir, ".mdreport-probe-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	closeErr := probe.Close()
	removeErr := os.Remove(name)
	if closeErr != nil {
		return closeErr
	}
	return removeErr
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "quarterly" -> false (name)
//   - "./quarterly.yaml" -> true (relative path)
//   - "/etc/mdreport/run.yaml" -> true (absolute)
//   - "C:\reports\run.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
