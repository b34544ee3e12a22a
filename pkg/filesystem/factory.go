package filesystem

import (
	"fmt"

	scanerrors "github.com/joe/scan-dir/pkg/errors"
)

// Create creates a FileSystem for the given path.
// Returns (filesystem, basePath, closer, error).
//   - filesystem: The FileSystem to use for operations
//   - basePath: The actual path to use with the filesystem (stripped of URL prefix)
//   - closer: A function to call when done (closes SFTP connections), or nil for local
func Create(pathStr string) (FileSystem, string, func(), error) {
	parsed, err := ParsePath(pathStr)
	if err != nil {
		return nil, "", nil, err
	}

	if !parsed.IsRemote {
		return NewRealFileSystem(), parsed.LocalPath, nil, nil
	}

	conn, err := Connect(parsed.Host, parsed.Port, parsed.User)
	if err != nil {
		wrapped := fmt.Errorf("failed to connect to %s@%s:%d: %w",
			parsed.User, parsed.Host, parsed.Port, err)
		// Connection failures are the one place a library consumer has no
		// structured error to inspect, so enrich with suggestions.
		return nil, "", nil, scanerrors.NewEnricher().Enrich(wrapped, pathStr)
	}

	fs := NewSFTPFileSystem(conn)
	closer := func() {
		_ = fs.Close()
	}

	return fs, parsed.Path, closer, nil
}
