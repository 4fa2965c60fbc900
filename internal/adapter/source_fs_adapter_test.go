package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/esdump/internal/model"
)

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "a.js")
	if err := os.WriteFile(path, []byte("var x = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}

	content, err := a.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(content) != "var x = 1;" {
		t.Fatalf("ReadFile() = %q", content)
	}
}

func TestLocalSourceFSAdapter_ReadFile_Missing(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	if _, err := a.ReadFile(m.Path(filepath.Join(t.TempDir(), "missing.js"))); err == nil {
		t.Fatalf("ReadFile() expected error for missing file")
	}
}

func TestLocalSourceFSAdapter_WriteFile_CreatesParentDirs(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "nested", "dir", "out.go")
	if err := a.WriteFile(m.Path(path), []byte("package fixtures\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	if string(content) != "package fixtures\n" {
		t.Fatalf("written content = %q", content)
	}
}

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "a.js"))
	mustWrite(t, filepath.Join(root, "sub", "b.js"))

	var seen []string

	err := a.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			seen = append(seen, filepath.Base(path))
		}

		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("Walk() visited %v, want two files", seen)
	}
}

func TestLocalSourceFSAdapter_Walk_NonRecursive(t *testing.T) {
	a := NewLocalSourceFSAdapter()

	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "a.js"))
	mustWrite(t, filepath.Join(root, "sub", "b.js"))

	var seen []string

	err := a.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			seen = append(seen, filepath.Base(path))
		}

		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(seen) != 1 || seen[0] != "a.js" {
		t.Fatalf("Walk() visited %v, want just a.js", seen)
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("1;"), 0o644); err != nil {
		t.Fatal(err)
	}
}
