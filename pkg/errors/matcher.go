package errors

import (
	"errors"
	"os"
	"strings"
)

// Categorize inspects an error and decides which ErrorCategory it belongs to.
// Sentinel errors are preferred; message matching covers causes that arrive
// stringified (SSH handshake failures, remote SFTP status codes).
func Categorize(err error) ErrorCategory {
	if err == nil {
		return CategoryUnknown
	}

	switch {
	case errors.Is(err, os.ErrPermission):
		return CategoryPermission
	case errors.Is(err, os.ErrNotExist):
		return CategoryPath
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "permission denied", "operation not permitted", "access is denied"):
		return CategoryPermission
	case containsAny(msg, "no such file", "not a directory", "file does not exist"):
		return CategoryPath
	case containsAny(msg, "connection refused", "connection reset", "unable to authenticate",
		"handshake failed", "no route to host", "i/o timeout", "broken pipe"):
		return CategoryConnection
	case strings.Contains(msg, "not valid utf-8"):
		return CategoryDecode
	}

	return CategoryUnknown
}

func containsAny(msg string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(msg, needle) {
			return true
		}
	}

	return false
}
