//go:build integration

package integration_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/scan-dir/pkg/scandir"
)

// TestIntegration_WalkMatchesFilepathWalkDir verifies that an unfiltered walk
// over a generated tree finds exactly the same paths the standard library
// walker does.
func TestIntegration_WalkMatchesFilepathWalkDir(t *testing.T) {
	g := NewWithT(t)

	root := t.TempDir()

	// A few levels of fanout: 3 dirs x 3 dirs x 5 files.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dir := filepath.Join(root,
				"dir"+string(rune('a'+i)),
				"sub"+string(rune('a'+j)))
			g.Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
			for k := 0; k < 5; k++ {
				path := filepath.Join(dir, "file"+string(rune('0'+k))+".txt")
				g.Expect(os.WriteFile(path, []byte("content"), 0o644)).To(Succeed())
			}
		}
	}

	var want []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root {
			want = append(want, path)
		}
		return nil
	})
	g.Expect(err).ShouldNot(HaveOccurred())

	var got []string
	err = scandir.All().Walk(root, func(w *scandir.Walker) {
		for {
			entry, _, ok := w.Next()
			if !ok {
				return
			}
			got = append(got, entry.Path())
		}
	})
	g.Expect(err).ShouldNot(HaveOccurred())

	sort.Strings(want)
	sort.Strings(got)
	g.Expect(got).To(Equal(want))
}

// TestIntegration_FilesOnlyWalkFindsEveryFile verifies the files-only policy
// against known contents: every file, no directories.
func TestIntegration_FilesOnlyWalkFindsEveryFile(t *testing.T) {
	g := NewWithT(t)

	root := t.TempDir()
	files := []string{
		"a.txt",
		"one/b.txt",
		"one/two/c.txt",
		"one/two/three/d.txt",
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		g.Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		g.Expect(os.WriteFile(path, []byte("content"), 0o644)).To(Succeed())
	}

	var got []string
	err := scandir.Files().Walk(root, func(w *scandir.Walker) {
		for {
			entry, _, ok := w.Next()
			if !ok {
				return
			}
			rel, relErr := filepath.Rel(root, entry.Path())
			g.Expect(relErr).ShouldNot(HaveOccurred())
			got = append(got, filepath.ToSlash(rel))
		}
	})
	g.Expect(err).ShouldNot(HaveOccurred())

	sort.Strings(got)
	g.Expect(got).To(Equal(files))
}

// TestIntegration_NoiseIsFilteredEverywhere seeds editor noise at several
// depths and verifies the default files policy drops all of it.
func TestIntegration_NoiseIsFilteredEverywhere(t *testing.T) {
	g := NewWithT(t)

	root := t.TempDir()
	keep := []string{"real.txt", "src/main.go"}
	noise := []string{
		"real.txt~",
		".#real.txt",
		"#autosave#",
		"backup.bak",
		"src/main.go~",
		".git/config",
	}
	for _, f := range append(append([]string{}, keep...), noise...) {
		path := filepath.Join(root, f)
		g.Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		g.Expect(os.WriteFile(path, []byte("content"), 0o644)).To(Succeed())
	}

	var got []string
	err := scandir.Files().Walk(root, func(w *scandir.Walker) {
		for {
			entry, _, ok := w.Next()
			if !ok {
				return
			}
			rel, relErr := filepath.Rel(root, entry.Path())
			g.Expect(relErr).ShouldNot(HaveOccurred())
			got = append(got, filepath.ToSlash(rel))
		}
	})
	g.Expect(err).ShouldNot(HaveOccurred())

	sort.Strings(got)
	g.Expect(got).To(Equal(keep))
	for _, path := range got {
		g.Expect(strings.HasSuffix(path, "~")).To(BeFalse())
	}
}
