//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package errors_test

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	scanerrors "github.com/joe/scan-dir/pkg/errors"
)

func TestCategorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want scanerrors.ErrorCategory
	}{
		{
			name: "wrapped permission sentinel",
			err:  fmt.Errorf("scan failed: %w", os.ErrPermission),
			want: scanerrors.CategoryPermission,
		},
		{
			name: "wrapped not-exist sentinel",
			err:  fmt.Errorf("scan failed: %w", os.ErrNotExist),
			want: scanerrors.CategoryPath,
		},
		{
			name: "stringified permission denied",
			err:  stderrors.New("open /etc/shadow: permission denied"),
			want: scanerrors.CategoryPermission,
		},
		{
			name: "stringified missing path",
			err:  stderrors.New("lstat /tmp/gone: no such file or directory"),
			want: scanerrors.CategoryPath,
		},
		{
			name: "connection refused",
			err:  stderrors.New("dial tcp 10.0.0.1:22: connection refused"),
			want: scanerrors.CategoryConnection,
		},
		{
			name: "ssh auth failure",
			err:  stderrors.New("ssh: handshake failed: unable to authenticate"),
			want: scanerrors.CategoryConnection,
		},
		{
			name: "decode failure",
			err:  stderrors.New("file name is not valid utf-8"),
			want: scanerrors.CategoryDecode,
		},
		{
			name: "anything else",
			err:  stderrors.New("something odd happened"),
			want: scanerrors.CategoryUnknown,
		},
		{
			name: "nil error",
			err:  nil,
			want: scanerrors.CategoryUnknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := scanerrors.Categorize(tt.err); got != tt.want {
				t.Errorf("Categorize(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
