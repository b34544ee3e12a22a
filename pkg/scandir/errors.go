package scandir

import (
	"errors"
	"fmt"
)

// ErrDecode is the sentinel cause carried by decode failures, so callers can
// test for them with errors.Is.
var ErrDecode = errors.New("file name is not valid utf-8")

// Error is one failure recorded during a scan: either an I/O failure while
// reading or classifying an entry, or a file name that is not decodable to
// UTF-8. Errors are created during iteration and never mutated afterwards.
type Error struct {
	// Path is the directory or entry the failure is about.
	Path string

	// Raw holds the original name bytes for decode failures, nil otherwise.
	Raw []byte

	err error
}

// NewIOError records an underlying read/open/stat failure at path.
func NewIOError(err error, path string) *Error {
	return &Error{Path: path, err: err}
}

// NewDecodeError records a file name at path that is not valid UTF-8.
func NewDecodeError(raw []byte, path string) *Error {
	return &Error{Path: path, Raw: raw, err: ErrDecode}
}

// IsDecode reports whether this is a decode failure rather than an I/O one.
func (e *Error) IsDecode() bool {
	return errors.Is(e.err, ErrDecode)
}

func (e *Error) Error() string {
	if e.IsDecode() {
		return fmt.Sprintf("error decoding file name %q", e.Path)
	}

	return fmt.Sprintf("error reading directory %q: %v", e.Path, e.err)
}

// Unwrap returns the underlying cause (ErrDecode for decode failures).
func (e *Error) Unwrap() error {
	return e.err
}

// ErrorList is the ordered collection of failures from one scan call.
// It is the error value Read and Walk return when anything went wrong;
// iteration itself never stops because of a recorded error.
type ErrorList []*Error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no scan errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
	}
}

// Unwrap exposes every recorded error to errors.Is and errors.As.
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}

	return errs
}

// add appends an error, keeping occurrence order.
func (l *ErrorList) add(e *Error) {
	*l = append(*l, e)
}

// errOrNil converts the collection into the scan call's result: an empty
// collection is success.
func (l ErrorList) errOrNil() error {
	if len(l) == 0 {
		return nil
	}

	return l
}
