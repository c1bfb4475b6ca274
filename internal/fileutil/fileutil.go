// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath = errors.New("path cannot be empty")
	ErrIsDir     = errors.New("path is a directory")
)

// tempPattern names in-flight files so a crashed run is recognizable.
const tempPattern = ".pdfer-*.tmp"

// WriteAtomic writes the output of fill to path without ever exposing a
// partial file there. Content goes to a temporary file in the same directory,
// which is synced, closed, chmodded to perm, then renamed over path.
// The temporary file is removed on every failure path, so after an error
// path holds either its previous content or nothing.
func WriteAtomic(path string, perm os.FileMode, fill func(w io.Writer) error) (err error) {
	if path == "" {
		return ErrEmptyPath
	}
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDir, path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = tmp.Close()
		}
		_ = os.Remove(tmpPath)
	}()

	if err = fill(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("moving into place: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// PathExists returns true if anything (file, directory, dangling symlink)
// occupies path.
func PathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// HasPDFExt reports whether path ends in .pdf, ignoring case.
func HasPDFExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// EnsurePDFExt replaces any other extension of path with .pdf.
//
// Examples:
//   - "out.pdf" -> "out.pdf"
//   - "out.PDF" -> "out.PDF"
//   - "out" -> "out.pdf"
//   - "report.txt" -> "report.pdf"
func EnsurePDFExt(path string) string {
	if HasPDFExt(path) {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".pdf"
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
