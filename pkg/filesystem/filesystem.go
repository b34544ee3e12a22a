// Package filesystem provides the read-side filesystem abstraction that
// directory scans run on, with local, SFTP and in-memory implementations.
package filesystem

import (
	"os"
	"path/filepath"
)

// FileSystem is the capability a directory scan consumes: list a directory,
// stat entries with and without following symlinks, and join path elements.
//
// The ReadDir/Lstat/Join subset deliberately matches kr/fs.FileSystem, so any
// implementation can also drive a kr/fs walker (see Scan).
type FileSystem interface {
	// ReadDir lists the named directory. The returned infos describe each
	// entry without following symlinks (lstat semantics).
	ReadDir(dirname string) ([]os.FileInfo, error)

	// Lstat returns information about the named file without following
	// symlinks.
	Lstat(name string) (os.FileInfo, error)

	// Stat returns information about the named file, following symlinks.
	Stat(name string) (os.FileInfo, error)

	// Join joins path elements using this filesystem's separator.
	Join(elem ...string) string
}

// RealFileSystem implements FileSystem using the local OS filesystem.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// ReadDir lists a local directory. Errors are returned as-is: os errors
// already carry the path.
func (fs *RealFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// The entry disappeared between the directory read and
			// the lstat. Report against the directory being read.
			return infos, err
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// Lstat returns file information without following symlinks.
func (fs *RealFileSystem) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

// Stat returns file information, following symlinks.
func (fs *RealFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Join joins path elements with the OS path separator.
func (fs *RealFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}
