//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package scandir_test

import (
	"errors"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/joe/scan-dir/pkg/filesystem"
	"github.com/joe/scan-dir/pkg/scandir"
)

// The mock filesystem drives the failure paths that are hard to produce on a
// real filesystem: undecodable names, directories that stop being readable
// mid-walk, stat failures during symlink classification.

func TestReadFS_DecodeFailureDoesNotStopSiblings(t *testing.T) {
	t.Parallel()

	fsys := filesystem.NewMockFileSystem()
	fsys.AddDir("root")
	fsys.AddFile("root/good.txt", 1, time.Now())
	fsys.AddFile("root/\xff\xfebad", 1, time.Now())
	fsys.AddFile("root/also-good.txt", 1, time.Now())

	var names []string
	err := scandir.Files().ReadFS(fsys, "root", func(it *scandir.Iter) {
		for {
			_, name, ok := it.Next()
			if !ok {
				return
			}
			names = append(names, name)
		}
	})

	sort.Strings(names)
	assertSameNames(t, names, []string{"also-good.txt", "good.txt"})

	// The skip is never silent: the call still fails overall.
	if err == nil {
		t.Fatal("Expected an error for the undecodable name")
	}
	if !errors.Is(err, scandir.ErrDecode) {
		t.Errorf("Expected ErrDecode in the chain, got %v", err)
	}

	var list scandir.ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("Expected ErrorList, got %T", err)
	}
	if len(list) != 1 {
		t.Fatalf("Expected one recorded error, got %d", len(list))
	}
	if !list[0].IsDecode() {
		t.Error("Recorded error should be a decode failure")
	}
	if string(list[0].Raw) != "\xff\xfebad" {
		t.Errorf("Raw = %q, want the original name bytes", list[0].Raw)
	}
}

func TestReadFS_DecodeErrorCollectedEvenIfCallbackStopsEarly(t *testing.T) {
	t.Parallel()

	fsys := filesystem.NewMockFileSystem()
	fsys.AddDir("root")
	fsys.AddFile("root/a.txt", 1, time.Now())
	fsys.AddFile("root/z\xffz", 1, time.Now())

	// The callback pulls nothing; draining still visits and records the bad
	// entry.
	err := scandir.Files().ReadFS(fsys, "root", func(it *scandir.Iter) {})
	if !errors.Is(err, scandir.ErrDecode) {
		t.Errorf("Expected ErrDecode after draining, got %v", err)
	}
}

func TestWalkFS_UnreadableSubdirTerminatesOnlyThatLevel(t *testing.T) {
	t.Parallel()

	fsys := filesystem.NewMockFileSystem()
	fsys.AddDir("root")
	fsys.AddFile("root/broken/trapped.txt", 1, time.Now())
	fsys.AddFile("root/ok/fine.txt", 1, time.Now())
	readDirErr := &os.PathError{Op: "open", Path: "root/broken", Err: os.ErrPermission}
	fsys.FailReadDir("root/broken", readDirErr)

	var paths []string
	err := scandir.Files().WalkFS(fsys, "root", func(w *scandir.Walker) {
		for {
			entry, _, ok := w.Next()
			if !ok {
				return
			}
			paths = append(paths, entry.Path())
		}
	})

	sort.Strings(paths)
	assertSameNames(t, paths, []string{"root/ok/fine.txt"})

	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("Expected the permission failure in the chain, got %v", err)
	}

	var scanErr *scandir.Error
	if !errors.As(err, &scanErr) {
		t.Fatalf("Expected a *scandir.Error, got %T", err)
	}
	if scanErr.IsDecode() {
		t.Error("Recorded error should be an I/O failure, not decode")
	}
	if scanErr.Path != "root/broken" {
		t.Errorf("Error path = %q, want %q", scanErr.Path, "root/broken")
	}
}

func TestReadFS_StatFailureDuringClassification(t *testing.T) {
	t.Parallel()

	fsys := filesystem.NewMockFileSystem()
	fsys.AddDir("root")
	fsys.AddFile("root/regular.txt", 1, time.Now())
	fsys.AddSymlink("root/dangling", "missing-target")

	var names []string
	// Files() needs the resolved type of the symlink to classify it, and
	// resolution fails on a dangling link.
	err := scandir.Files().ReadFS(fsys, "root", func(it *scandir.Iter) {
		for {
			_, name, ok := it.Next()
			if !ok {
				return
			}
			names = append(names, name)
		}
	})

	assertSameNames(t, names, []string{"regular.txt"})

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected stat failure in the chain, got %v", err)
	}
}

func TestReadFS_SymlinkResolvedForTypeFilters(t *testing.T) {
	t.Parallel()

	fsys := filesystem.NewMockFileSystem()
	fsys.AddDir("root")
	fsys.AddDir("root/realdir")
	fsys.AddFile("root/realfile.txt", 1, time.Now())
	fsys.AddSymlink("root/dirlink", "realdir")
	fsys.AddSymlink("root/filelink", "realfile.txt")

	// Files(): the link to a directory classifies as a directory and is
	// skipped; the link to a file classifies as a file and is yielded.
	var names []string
	err := scandir.Files().ReadFS(fsys, "root", func(it *scandir.Iter) {
		for {
			_, name, ok := it.Next()
			if !ok {
				return
			}
			names = append(names, name)
		}
	})
	if err != nil {
		t.Fatalf("ReadFS failed: %v", err)
	}

	sort.Strings(names)
	assertSameNames(t, names, []string{"filelink", "realfile.txt"})
}

func TestReadFS_SkipSymlinksDropsBeforeClassification(t *testing.T) {
	t.Parallel()

	fsys := filesystem.NewMockFileSystem()
	fsys.AddDir("root")
	fsys.AddFile("root/plain.txt", 1, time.Now())
	fsys.AddSymlink("root/dangling", "missing")
	// Stat on the link would fail, but with SkipSymlinks the link is
	// dropped before any resolution happens.
	fsys.FailStat("root/dangling", os.ErrPermission)

	var names []string
	err := scandir.Files().SkipSymlinks(true).ReadFS(fsys, "root", func(it *scandir.Iter) {
		for {
			_, name, ok := it.Next()
			if !ok {
				return
			}
			names = append(names, name)
		}
	})
	if err != nil {
		t.Fatalf("ReadFS failed: %v", err)
	}

	assertSameNames(t, names, []string{"plain.txt"})
}

func TestWalkFS_MultipleErrorsKeepOccurrenceOrder(t *testing.T) {
	t.Parallel()

	fsys := filesystem.NewMockFileSystem()
	fsys.AddDir("root")
	fsys.AddFile("root/a\xff", 1, time.Now())
	fsys.AddDir("root/locked")
	fsys.FailReadDir("root/locked", os.ErrPermission)

	err := scandir.Files().WalkFS(fsys, "root", func(w *scandir.Walker) {})
	if err == nil {
		t.Fatal("Expected errors")
	}

	var list scandir.ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("Expected ErrorList, got %T", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected two recorded errors, got %d", len(list))
	}
	// Mock directories list in name order: the decode failure comes first.
	if !list[0].IsDecode() {
		t.Error("First recorded error should be the decode failure")
	}
	if list[1].IsDecode() {
		t.Error("Second recorded error should be the I/O failure")
	}
}
