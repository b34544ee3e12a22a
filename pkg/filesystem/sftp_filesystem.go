package filesystem

import (
	"fmt"
	"os"
)

// SFTPFileSystem implements FileSystem for SFTP connections.
//
// A scan pulls entries synchronously from a single goroutine, so one client
// serves the whole session; no connection pooling is needed on the read path.
type SFTPFileSystem struct {
	conn *SFTPConnection
}

// NewSFTPFileSystem creates an SFTP filesystem using an established connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return &SFTPFileSystem{conn: conn}
}

// ReadDir lists a remote directory. SFTP errors carry no path context, so
// the path is added here.
func (fs *SFTPFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	infos, err := fs.conn.Client().ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote directory %s: %w", dirname, err)
	}

	return infos, nil
}

// Lstat returns remote file information without following symlinks.
func (fs *SFTPFileSystem) Lstat(name string) (os.FileInfo, error) {
	info, err := fs.conn.Client().Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat remote file %s: %w", name, err)
	}

	return info, nil
}

// Stat returns remote file information, following symlinks.
func (fs *SFTPFileSystem) Stat(name string) (os.FileInfo, error) {
	info, err := fs.conn.Client().Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote file %s: %w", name, err)
	}

	return info, nil
}

// Join joins path elements with forward slashes, as the SFTP server expects.
func (fs *SFTPFileSystem) Join(elem ...string) string {
	return fs.conn.Client().Join(elem...)
}

// Close closes the underlying connection.
func (fs *SFTPFileSystem) Close() error {
	return fs.conn.Close()
}
