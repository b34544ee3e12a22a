package filesystem

import (
	"strings"
	"time"

	krfs "github.com/kr/fs"
)

// FileScanner is an iterator over every entry under a directory tree.
// It applies no filtering; callers that need policy-driven filtering
// should use the scandir package instead.
type FileScanner interface {
	// Next advances to the next entry and returns its info.
	// Returns (FileInfo{}, false) when the scan is done.
	Next() (FileInfo, bool)

	// Err returns the first error that occurred during scanning.
	// Should be checked after Next() returns false.
	Err() error
}

// FileInfo contains metadata about one scanned entry.
// This is our own type (not os.FileInfo) to make it easier to work with.
type FileInfo struct {
	// RelativePath is the path relative to the scan root
	RelativePath string

	// Size is the file size in bytes
	Size int64

	// ModTime is the modification time
	ModTime time.Time

	// IsDir indicates if this is a directory
	IsDir bool
}

// Scan returns a FileScanner over the tree rooted at root on fsys.
// One kr/fs walker serves every FileSystem implementation.
func Scan(fsys FileSystem, root string) FileScanner {
	return &walkScanner{
		walker: krfs.WalkFS(root, fsys),
		root:   root,
	}
}

// walkScanner adapts a kr/fs walker to the FileScanner interface.
type walkScanner struct {
	walker *krfs.Walker
	root   string
	err    error
}

// Next advances to the next entry and returns its info.
func (s *walkScanner) Next() (FileInfo, bool) {
	for s.walker.Step() {
		if err := s.walker.Err(); err != nil {
			if s.err == nil {
				s.err = err
			}

			continue
		}

		path := s.walker.Path()
		if path == s.root {
			// Skip the root directory itself
			continue
		}

		info := s.walker.Stat()

		return FileInfo{
			RelativePath: relativeTo(s.root, path),
			Size:         info.Size(),
			ModTime:      info.ModTime(),
			IsDir:        info.IsDir(),
		}, true
	}

	return FileInfo{}, false
}

// Err returns the first error that occurred during scanning.
func (s *walkScanner) Err() error {
	return s.err
}

// relativeTo strips the root prefix from path. filepath.Rel is avoided here
// because remote filesystems always join with forward slashes.
func relativeTo(root, path string) string {
	rel := strings.TrimPrefix(path, root)
	return strings.TrimLeft(rel, `/\`)
}
