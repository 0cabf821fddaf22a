// Package fsops provides filesystem operations behind a small interface.
//
// All filesystem access in pkgalign goes through the FS interface so the
// planner and engine can be exercised against temp directories in tests
// and never touch anything outside the project being aligned.
package fsops

import (
	"bufio"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// DirExists reports whether path exists and is a directory.
	DirExists(path string) (bool, error)

	// Lstat returns file info without following symlinks.
	Lstat(path string) (os.FileInfo, error)

	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// ReadLines reads a UTF-8 text file and returns its lines.
	ReadLines(path string) ([]string, error)

	// SourceFiles lists every regular file under root, recursively, whose
	// name ends with suffix, in walk order.
	SourceFiles(root, suffix string) ([]string, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// Rename moves a file from oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// DirExists reports whether path exists and is a directory.
func (fs *RealFS) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// Lstat returns file info without following symlinks.
func (fs *RealFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// Stat returns file info, following symlinks.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadLines reads a UTF-8 text file and returns its lines.
func (fs *RealFS) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var lines []string
	scanner := bufio.NewScanner(f)
	// Source lines longer than the default 64K token limit are rare but legal.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// SourceFiles lists every regular file under root whose name ends with
// suffix, in walk order.
func (fs *RealFS) SourceFiles(root, suffix string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

// MkdirAll creates a directory and all parent directories.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Rename moves a file from oldpath to newpath.
func (fs *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
