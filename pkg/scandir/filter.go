package scandir

import (
	"os"
	"strings"
)

// nameMatches applies the hidden and backup name rules. It never needs the
// entry's type, so the walker also uses it to gate descent.
func (s ScanDir) nameMatches(name string) bool {
	if s.skipHidden && strings.HasPrefix(name, ".") {
		return false
	}
	if s.skipBackup && isBackupName(name) {
		return false
	}

	return true
}

// isBackupName reports whether name matches the editor/VCS temporary-file
// conventions:
//
//	.#*    emacs lock files
//	*~     vim/emacs/other backup files
//	#*#    emacs auto save
//	*.bak  generic backups (also *.BAK)
func isBackupName(name string) bool {
	switch {
	case strings.HasPrefix(name, ".#"):
		return true
	case strings.HasSuffix(name, "~"):
		return true
	case strings.HasPrefix(name, "#") && strings.HasSuffix(name, "#"):
		return true
	case strings.HasSuffix(name, ".bak"), strings.HasSuffix(name, ".BAK"):
		return true
	}

	return false
}

// matches decides whether an entry is admitted. A nil *Error and false means
// the entry is filtered out; a non-nil *Error means classification itself
// failed and the entry is skipped with the error recorded.
func (s ScanDir) matches(entry Entry) (bool, *Error) {
	if !s.nameMatches(entry.Name()) {
		return false, nil
	}

	mode := entry.Info().Mode()
	if mode&os.ModeSymlink != 0 {
		if s.skipSymlinks {
			return false, nil
		}
		// Type filters classify by the target's type, not the link's.
		if s.skipDirs || s.skipFiles {
			info, err := entry.Stat()
			if err != nil {
				return false, NewIOError(err, entry.Path())
			}
			mode = info.Mode()
		}
	}

	if s.skipDirs && mode.IsDir() {
		return false, nil
	}
	if s.skipFiles && mode.IsRegular() {
		return false, nil
	}

	return true, nil
}
