package errors

// suggestionsFor maps each category to the guidance shown to users.
func suggestionsFor(category ErrorCategory, path string) []string {
	switch category {
	case CategoryPermission:
		return []string{
			"Check that you have read permission on " + displayPath(path),
			"Check the permissions of parent directories (they need execute permission)",
			"Re-run as a user that owns the directory, or ask the owner to grant access",
		}
	case CategoryPath:
		return []string{
			"Check that " + displayPath(path) + " exists and is spelled correctly",
			"Check that the path is a directory, not a file",
			"If the path is remote, check it exists on the server, not locally",
		}
	case CategoryConnection:
		return []string{
			"Check that the host is reachable and the SSH port is correct",
			"Check that your SSH key is loaded (ssh-add -l) or present in ~/.ssh",
			"Try connecting manually with ssh to verify credentials",
		}
	case CategoryDecode:
		return []string{
			"The file name is not valid UTF-8; rename the file to a portable name",
			"Entries with undecodable names are skipped but reported, the rest of the scan is unaffected",
		}
	default:
		return []string{
			"Check the underlying error message for details",
		}
	}
}

func displayPath(path string) string {
	if path == "" {
		return "the path"
	}

	return path
}
