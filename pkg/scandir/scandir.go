// Package scandir provides filtered, optionally-recursive directory
// enumeration that pairs each entry with its decoded name and reports
// decoding and I/O failures as collected, structured errors instead of
// silent skips or panics.
//
// A ScanDir value describes the filtering policy; Read iterates one
// directory level and Walk traverses a whole subtree:
//
//	err := scandir.Files().Read("/etc/conf.d", func(it *scandir.Iter) {
//		for entry, name, ok := it.Next(); ok; entry, name, ok = it.Next() {
//			fmt.Println(name, entry.Path())
//		}
//	})
//
// Failures on individual entries never abort the scan. They are collected
// and returned once, as an ErrorList, when the call completes; a nil return
// means every entry was enumerated and decoded.
//
// Scans run on local paths or on sftp://user@host:port/dir URLs; ReadFS and
// WalkFS accept any filesystem.FileSystem for everything else.
package scandir

import (
	"github.com/joe/scan-dir/pkg/filesystem"
)

// ScanDir is the settings value for a scan. It is immutable from the scan's
// point of view: the setters copy-on-modify, so policies can be built up,
// stored and reused freely.
type ScanDir struct {
	skipHidden   bool
	skipDirs     bool
	skipFiles    bool
	skipSymlinks bool
	skipBackup   bool
}

// All constructs a settings value that iterates over all entries.
//
// Just a starting point if you need complete control.
func All() ScanDir {
	return ScanDir{}
}

// Files constructs a settings value which only yields files (non-directories).
//
// Hidden and backup files are skipped by default; use the setters to
// override. Subdirectories are still descended into during a Walk, they are
// just not yielded.
func Files() ScanDir {
	return ScanDir{
		skipHidden: true,
		skipDirs:   true,
		skipBackup: true,
	}
}

// Dirs constructs a settings value which only yields directories.
//
// Directories matching the hidden and backup patterns are skipped by
// default; use the setters to override.
func Dirs() ScanDir {
	return ScanDir{
		skipHidden: true,
		skipFiles:  true,
		skipBackup: true,
	}
}

// SkipHidden sets whether entries whose name starts with a dot are skipped.
// The `.` and `..` entries are never yielded regardless of this setting.
func (s ScanDir) SkipHidden(flag bool) ScanDir {
	s.skipHidden = flag
	return s
}

// SkipDirs sets whether directory entries are skipped.
func (s ScanDir) SkipDirs(flag bool) ScanDir {
	s.skipDirs = flag
	return s
}

// SkipFiles sets whether file (non-directory) entries are skipped.
func (s ScanDir) SkipFiles(flag bool) ScanDir {
	s.skipFiles = flag
	return s
}

// SkipSymlinks sets whether symlink entries are skipped. A skipped symlink
// is dropped before type classification and is never resolved or descended
// into, even if it points at a directory.
func (s ScanDir) SkipSymlinks(flag bool) ScanDir {
	s.skipSymlinks = flag
	return s
}

// SkipBackup sets whether editor and VCS backup files are skipped.
//
// The matched patterns are `.#*`, `*~`, `#*#` and `*.bak`/`*.BAK`. There is
// no precise control over this list; turn it off and filter entries yourself
// if you need exact rules.
func (s ScanDir) SkipBackup(flag bool) ScanDir {
	s.skipBackup = flag
	return s
}

// Read opens path and calls fn with an iterator over the directory's
// admitted (Entry, name) pairs. The path may be local or an sftp:// URL.
//
// If opening the root fails, fn is not called and the error is returned as a
// one-element ErrorList. Otherwise the scan runs to completion (remaining
// entries are drained after fn returns, so every failure is collected) and
// the result is nil, or the accumulated ErrorList if anything went wrong.
// The iterator must not be retained outside fn.
func (s ScanDir) Read(path string, fn func(*Iter)) error {
	fsys, root, closer, err := filesystem.Create(path)
	if err != nil {
		return ErrorList{NewIOError(err, path)}
	}
	if closer != nil {
		defer closer()
	}

	return s.ReadFS(fsys, root, fn)
}

// ReadFS is Read over an explicit filesystem.
func (s ScanDir) ReadFS(fsys filesystem.FileSystem, path string, fn func(*Iter)) error {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return ErrorList{NewIOError(err, path)}
	}

	var errs ErrorList
	it := newIter(s, fsys, path, entries, &errs)
	fn(it)
	drainIter(it)

	return errs.errOrNil()
}

// Walk opens path and calls fn with a depth-first walker over the subtree's
// admitted (Entry, name) pairs. The path may be local or an sftp:// URL.
//
// Error semantics match Read: a root that cannot be opened fails immediately
// without invoking fn; every other failure is collected and reported once at
// the end. The walker must not be retained outside fn.
func (s ScanDir) Walk(path string, fn func(*Walker)) error {
	fsys, root, closer, err := filesystem.Create(path)
	if err != nil {
		return ErrorList{NewIOError(err, path)}
	}
	if closer != nil {
		defer closer()
	}

	return s.WalkFS(fsys, root, fn)
}

// WalkFS is Walk over an explicit filesystem.
func (s ScanDir) WalkFS(fsys filesystem.FileSystem, path string, fn func(*Walker)) error {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return ErrorList{NewIOError(err, path)}
	}

	var errs ErrorList
	w := newWalker(s, fsys, path, entries, &errs)
	fn(w)
	drainWalker(w)

	return errs.errOrNil()
}

// drainIter finishes an iterator the callback did not consume, so the error
// collection covers the whole level.
func drainIter(it *Iter) {
	for {
		if _, _, ok := it.Next(); !ok {
			return
		}
	}
}

// drainWalker finishes a walk the callback did not consume. Frames the
// callback abandoned with ExitCurrentDir stay abandoned.
func drainWalker(w *Walker) {
	for {
		if _, _, ok := w.Next(); !ok {
			return
		}
	}
}
