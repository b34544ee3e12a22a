package scandir

import (
	"os"

	"github.com/joe/scan-dir/pkg/filesystem"
)

// Entry is one directory member yielded by an Iter or Walker, paired with its
// decoded name. It stays valid only for the callback invocation that received
// the iterator; retain derived data (the path, the FileInfo) rather than the
// Entry itself.
type Entry struct {
	path string
	info os.FileInfo
	fsys filesystem.FileSystem
}

// Path returns the full path of the entry, rooted at the scanned path.
func (e Entry) Path() string {
	return e.path
}

// Name returns the entry's base name. It is always valid UTF-8: entries with
// undecodable names are recorded as decode errors and never yielded.
func (e Entry) Name() string {
	return e.info.Name()
}

// Info returns the entry's metadata as reported by the directory read, which
// does not follow symlinks.
func (e Entry) Info() os.FileInfo {
	return e.info
}

// Stat returns the entry's metadata with symlinks resolved.
func (e Entry) Stat() (os.FileInfo, error) {
	return e.fsys.Stat(e.path)
}
