package scandir

import (
	"os"

	"github.com/joe/scan-dir/pkg/filesystem"
)

// Walker is a depth-first traversal presented as the same flat (Entry, name)
// stream an Iter produces. Directories are yielded before their contents
// (pre-order); whether a directory is descended into depends only on the
// name filters and its link-level type, never on whether directory entries
// themselves are admitted, so a files-only policy still finds files deeper
// in the tree. Symlinks are yielded under the same rules as a single-level
// scan but are never walked through, so a link pointing back at an ancestor
// cannot make the traversal loop.
//
// A Walker is only valid inside the Walk callback that received it.
type Walker struct {
	settings ScanDir
	fsys     filesystem.FileSystem
	errs     *ErrorList
	stack    []*walkFrame
}

// walkFrame is one open directory level: the entries read from it and the
// position within them. Directory contents are read in full when the frame
// is opened, so no handle stays open between pulls.
type walkFrame struct {
	dir     string
	entries []os.FileInfo
	index   int
}

func newWalker(settings ScanDir, fsys filesystem.FileSystem, root string, entries []os.FileInfo, errs *ErrorList) *Walker {
	return &Walker{
		settings: settings,
		fsys:     fsys,
		errs:     errs,
		stack:    []*walkFrame{{dir: root, entries: entries}},
	}
}

// Next returns the next admitted (Entry, name) pair in depth-first pre-order,
// or ok=false when the traversal is complete.
func (w *Walker) Next() (Entry, string, bool) {
	for len(w.stack) > 0 {
		frame := w.stack[len(w.stack)-1]
		if frame.index >= len(frame.entries) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		info := frame.entries[frame.index]
		frame.index++

		entry, name, yield := w.step(frame.dir, info)
		if yield {
			return entry, name, true
		}
	}

	return Entry{}, "", false
}

// step processes one raw entry of the current frame: filters it, pushes a
// frame if it is a directory to descend into, and reports whether it should
// be yielded.
func (w *Walker) step(dir string, info os.FileInfo) (Entry, string, bool) {
	name, ok := admitName(w.fsys, dir, info, w.errs)
	if !ok {
		return Entry{}, "", false
	}

	// The name filters gate both yield and descent.
	if !w.settings.nameMatches(name) {
		return Entry{}, "", false
	}

	path := w.fsys.Join(dir, name)
	entry := Entry{path: path, info: info, fsys: w.fsys}

	// Descent goes by the link-level type, so only real directories are
	// walked into. Push the frame now; iteration of it starts on the next
	// pull, after the directory itself has been yielded.
	if info.Mode().IsDir() {
		sub, err := w.fsys.ReadDir(path)
		if err != nil {
			w.errs.add(NewIOError(err, path))
		} else {
			w.stack = append(w.stack, &walkFrame{dir: path, entries: sub})
		}
	}

	admitted, aerr := w.settings.matches(entry)
	if aerr != nil {
		w.errs.add(aerr)
		return Entry{}, "", false
	}
	if !admitted {
		return Entry{}, "", false
	}

	return entry, name, true
}

// ExitCurrentDir abandons the directory currently being iterated: no further
// entries under it are yielded, and the next pull resumes at the parent
// level. Calling it right after a directory was yielded cancels the descent
// into that directory. At the root level it ends the walk.
func (w *Walker) ExitCurrentDir() {
	if len(w.stack) > 0 {
		w.stack = w.stack[:len(w.stack)-1]
	}
}
