// Package fileutil provides file modes and whole-file writes shared by the
// release store and the CLI.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// OwnerReadWrite is the file permission mode for exported documents that may
// contain unreleased API data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for release snapshots and the
// ledger, which are meant to be committed and read by other tools.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for created release folders.
const DirReadableByAll os.FileMode = 0o755

// WriteFileAtomic writes data to path by writing a temporary file in the same
// directory and renaming it over path. Readers never observe a partially
// written file. The parent directory is created when missing.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirReadableByAll); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("chmod %s: %w", path, err)
	}

	// Atomically move temp file to final location
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("move %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists. Errors other than "not exist" are
// returned to the caller.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
