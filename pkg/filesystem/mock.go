package filesystem

import (
	"os"
	"path"
	"sort"
	"sync"
	"time"
)

// maxLinkHops bounds symlink resolution in the mock to avoid cycles.
const maxLinkHops = 8

// MockFileSystem is an in-memory FileSystem implementation for testing.
// It supports symlinks and failure injection so error paths can be driven
// without a real filesystem.
type MockFileSystem struct {
	mu          sync.RWMutex
	files       map[string]*mockFile
	readDirErrs map[string]error
	statErrs    map[string]error
}

// mockFile represents one entry in the mock filesystem.
type mockFile struct {
	name       string
	size       int64
	modTime    time.Time
	isDir      bool
	linkTarget string
}

// NewMockFileSystem creates an empty mock filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:       make(map[string]*mockFile),
		readDirErrs: make(map[string]error),
		statErrs:    make(map[string]error),
	}
}

// AddFile adds a regular file. Parent directories are created implicitly.
func (m *MockFileSystem) AddFile(name string, size int64, modTime time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.addParents(name)
	m.files[path.Clean(name)] = &mockFile{
		name:    path.Base(name),
		size:    size,
		modTime: modTime,
	}
}

// AddDir adds a directory. Parent directories are created implicitly.
func (m *MockFileSystem) AddDir(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.addParents(name)
	m.files[path.Clean(name)] = &mockFile{
		name:  path.Base(name),
		isDir: true,
	}
}

// AddSymlink adds a symlink pointing at target. A relative target is
// resolved against the link's own directory, as on a real filesystem.
func (m *MockFileSystem) AddSymlink(name, target string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.addParents(name)
	m.files[path.Clean(name)] = &mockFile{
		name:       path.Base(name),
		linkTarget: target,
	}
}

// FailReadDir makes ReadDir on the named directory return err.
func (m *MockFileSystem) FailReadDir(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readDirErrs[path.Clean(name)] = err
}

// FailStat makes Stat on the named path return err.
func (m *MockFileSystem) FailStat(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.statErrs[path.Clean(name)] = err
}

// addParents creates missing ancestor directories. Callers hold m.mu.
func (m *MockFileSystem) addParents(name string) {
	dir := path.Dir(path.Clean(name))
	for dir != "." && dir != "/" {
		if _, ok := m.files[dir]; !ok {
			m.files[dir] = &mockFile{name: path.Base(dir), isDir: true}
		}
		dir = path.Dir(dir)
	}
}

// ReadDir lists the named directory in name order.
func (m *MockFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dirname = path.Clean(dirname)
	if err, ok := m.readDirErrs[dirname]; ok {
		return nil, err
	}

	dir, ok := m.files[dirname]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: dirname, Err: os.ErrNotExist}
	}
	if !dir.isDir {
		return nil, &os.PathError{Op: "readdirent", Path: dirname, Err: os.ErrInvalid}
	}

	var names []string
	for p := range m.files {
		if path.Dir(p) == dirname {
			names = append(names, p)
		}
	}
	sort.Strings(names)

	infos := make([]os.FileInfo, 0, len(names))
	for _, p := range names {
		infos = append(infos, m.files[p].info())
	}

	return infos, nil
}

// Lstat returns information about the named entry without following symlinks.
func (m *MockFileSystem) Lstat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = path.Clean(name)
	f, ok := m.files[name]
	if !ok {
		return nil, &os.PathError{Op: "lstat", Path: name, Err: os.ErrNotExist}
	}

	return f.info(), nil
}

// Stat returns information about the named entry, following symlinks.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = path.Clean(name)
	if err, ok := m.statErrs[name]; ok {
		return nil, err
	}

	cur := name
	for hop := 0; hop <= maxLinkHops; hop++ {
		f, ok := m.files[cur]
		if !ok {
			return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
		}
		if f.linkTarget == "" {
			return f.info(), nil
		}

		target := f.linkTarget
		if !path.IsAbs(target) {
			target = path.Join(path.Dir(cur), target)
		}
		cur = path.Clean(target)
	}

	return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrInvalid}
}

// Join joins path elements with forward slashes.
func (m *MockFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

func (f *mockFile) info() os.FileInfo {
	mode := os.FileMode(0o644)
	switch {
	case f.isDir:
		mode = os.ModeDir | 0o755
	case f.linkTarget != "":
		mode = os.ModeSymlink | 0o777
	}

	return &mockFileInfo{
		name:    f.name,
		size:    f.size,
		modTime: f.modTime,
		mode:    mode,
	}
}

// mockFileInfo implements os.FileInfo for mock entries.
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	mode    os.FileMode
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *mockFileInfo) Sys() interface{}   { return nil }
