package scandir

import (
	"os"
	"unicode/utf8"

	"github.com/joe/scan-dir/pkg/filesystem"
)

// Iter iterates over one directory level, applying the scan's filter policy
// and recording failures as it goes. The sequence is finite and forward-only:
// consuming it exhausts it, and it is only valid inside the Read callback
// that received it.
type Iter struct {
	settings ScanDir
	fsys     filesystem.FileSystem
	dir      string
	entries  []os.FileInfo
	index    int
	errs     *ErrorList
}

func newIter(settings ScanDir, fsys filesystem.FileSystem, dir string, entries []os.FileInfo, errs *ErrorList) *Iter {
	return &Iter{
		settings: settings,
		fsys:     fsys,
		dir:      dir,
		entries:  entries,
		errs:     errs,
	}
}

// Next returns the next admitted (Entry, name) pair, or ok=false when the
// level is exhausted. Entries that fail the filters are skipped silently;
// entries that fail to decode or classify are skipped with an error recorded.
func (it *Iter) Next() (Entry, string, bool) {
	for it.index < len(it.entries) {
		info := it.entries[it.index]
		it.index++

		entry, name, ok := admit(it.settings, it.fsys, it.dir, info, it.errs)
		if ok {
			return entry, name, true
		}
	}

	return Entry{}, "", false
}

// admitName runs the prelude every yield path shares: the dot-entry drop and
// the name decode check. A decode failure is recorded and reported as ok=false.
func admitName(fsys filesystem.FileSystem, dir string, info os.FileInfo, errs *ErrorList) (string, bool) {
	name := info.Name()
	if name == "." || name == ".." {
		return "", false
	}

	if !utf8.ValidString(name) {
		errs.add(NewDecodeError([]byte(name), fsys.Join(dir, name)))
		return "", false
	}

	return name, true
}

// admit runs the full single-level per-entry pipeline: the shared prelude
// followed by the filter policy. The walker layers descent on top of the same
// prelude and policy in its own step.
func admit(settings ScanDir, fsys filesystem.FileSystem, dir string, info os.FileInfo, errs *ErrorList) (Entry, string, bool) {
	name, ok := admitName(fsys, dir, info, errs)
	if !ok {
		return Entry{}, "", false
	}

	entry := Entry{path: fsys.Join(dir, name), info: info, fsys: fsys}

	ok, err := settings.matches(entry)
	if err != nil {
		errs.add(err)
		return Entry{}, "", false
	}
	if !ok {
		return Entry{}, "", false
	}

	return entry, name, true
}
