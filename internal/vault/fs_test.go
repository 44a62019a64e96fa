package vault_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/vault"
)

// newVault creates an FS store over a temp directory populated with files.
// Keys are slash-separated relative paths; values are file contents.
func newVault(t *testing.T, files map[string]string) *vault.FS {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	store, err := vault.NewFS(root)
	if err != nil {
		t.Fatalf("NewFS() error = %v", err)
	}
	return store
}

// ---------------------------------------------------------------------------
// TestNewFS - Store construction
// ---------------------------------------------------------------------------

func TestNewFS(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		store, err := vault.NewFS(t.TempDir())
		if err != nil {
			t.Fatalf("NewFS() error = %v", err)
		}
		if !filepath.IsAbs(store.Root()) {
			t.Errorf("Root() = %q, want absolute path", store.Root())
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := vault.NewFS(filepath.Join(t.TempDir(), "nope"))
		if err == nil {
			t.Error("NewFS() with missing directory succeeded, want error")
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "f.txt")
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := vault.NewFS(file)
		if !errors.Is(err, vault.ErrNotADirectory) {
			t.Errorf("NewFS() error = %v, want ErrNotADirectory", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFS_PathSafety - Traversal and absolute path rejection
// ---------------------------------------------------------------------------

func TestFS_PathSafety(t *testing.T) {
	t.Parallel()

	store := newVault(t, map[string]string{"a.txt": "x"})

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "parent traversal", path: "../outside.txt", wantErr: vault.ErrPathEscapes},
		{name: "nested traversal", path: "dir/../../outside.txt", wantErr: vault.ErrPathEscapes},
		{name: "absolute path", path: "/etc/passwd", wantErr: vault.ErrAbsolutePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := store.ReadBytes(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadBytes(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFS_ReadWrite - Round trips and folder creation
// ---------------------------------------------------------------------------

func TestFS_ReadWrite(t *testing.T) {
	t.Parallel()

	t.Run("binary round trip with parent creation", func(t *testing.T) {
		t.Parallel()

		store := newVault(t, nil)
		data := []byte{0x00, 0xff, 0x10}
		if err := store.CreateBinaryFile("export/sub/out.bin", data); err != nil {
			t.Fatalf("CreateBinaryFile() error = %v", err)
		}
		got, err := store.ReadBytes("export/sub/out.bin")
		if err != nil {
			t.Fatalf("ReadBytes() error = %v", err)
		}
		if string(got) != string(data) {
			t.Errorf("ReadBytes() = %v, want %v", got, data)
		}
	})

	t.Run("exists reflects folder creation", func(t *testing.T) {
		t.Parallel()

		store := newVault(t, nil)
		ok, err := store.Exists("Note-Export")
		if err != nil || ok {
			t.Fatalf("Exists() before create = %v, %v", ok, err)
		}
		if err := store.CreateFolder("Note-Export"); err != nil {
			t.Fatalf("CreateFolder() error = %v", err)
		}
		ok, err = store.Exists("Note-Export")
		if err != nil || !ok {
			t.Errorf("Exists() after create = %v, %v, want true", ok, err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFS_ListAll - Store listing
// ---------------------------------------------------------------------------

func TestFS_ListAll(t *testing.T) {
	t.Parallel()

	store := newVault(t, map[string]string{
		"b.md":              "b",
		"a/pic.PNG":         "p",
		"a/deep/chart.svg":  "c",
		"z folder/noext":    "n",
		"z folder/song.mp3": "s",
	})

	files, err := store.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(files) != 5 {
		t.Fatalf("ListAll() returned %d files, want 5", len(files))
	}

	byPath := make(map[string]vault.FileInfo, len(files))
	for _, fi := range files {
		byPath[fi.Path] = fi
	}

	pic, ok := byPath["a/pic.PNG"]
	if !ok {
		t.Fatal("a/pic.PNG missing from listing")
	}
	if pic.Name != "pic.PNG" {
		t.Errorf("Name = %q, want %q", pic.Name, "pic.PNG")
	}
	if pic.Extension != "png" {
		t.Errorf("Extension = %q, want lowercase %q", pic.Extension, "png")
	}

	if noext, ok := byPath["z folder/noext"]; !ok || noext.Extension != "" {
		t.Errorf("noext Extension = %q, want empty", noext.Extension)
	}

	// WalkDir ordering is lexical.
	if files[0].Path != "a/deep/chart.svg" {
		t.Errorf("first listed = %q, want lexical order", files[0].Path)
	}
}

// ---------------------------------------------------------------------------
// TestFS_ResolveLinkTarget - Path-aware link resolution
// ---------------------------------------------------------------------------

func TestFS_ResolveLinkTarget(t *testing.T) {
	t.Parallel()

	store := newVault(t, map[string]string{
		"notes/Note.md":             "note",
		"notes/local.png":           "1",
		"attachments/shared.png":    "2",
		"deep/nested/dir/photo.jpg": "3",
		"a/dup.png":                 "4",
		"b/dup.png":                 "5",
	})

	tests := []struct {
		name     string
		linkpath string
		fromPath string
		want     string
		wantOK   bool
	}{
		{
			name:     "relative to note folder wins",
			linkpath: "local.png",
			fromPath: "notes/Note.md",
			want:     "notes/local.png",
			wantOK:   true,
		},
		{
			name:     "root-relative path",
			linkpath: "attachments/shared.png",
			fromPath: "notes/Note.md",
			want:     "attachments/shared.png",
			wantOK:   true,
		},
		{
			name:     "suffix match anywhere in store",
			linkpath: "photo.jpg",
			fromPath: "notes/Note.md",
			want:     "deep/nested/dir/photo.jpg",
			wantOK:   true,
		},
		{
			name:     "suffix match with partial path",
			linkpath: "dir/photo.jpg",
			fromPath: "Note.md",
			want:     "deep/nested/dir/photo.jpg",
			wantOK:   true,
		},
		{
			name:     "ambiguous name takes first in listing order",
			linkpath: "dup.png",
			fromPath: "notes/Note.md",
			want:     "a/dup.png",
			wantOK:   true,
		},
		{
			name:     "no match",
			linkpath: "absent.png",
			fromPath: "notes/Note.md",
			wantOK:   false,
		},
		{
			name:     "empty link",
			linkpath: "",
			fromPath: "notes/Note.md",
			wantOK:   false,
		},
		{
			name:     "traversal link rejected",
			linkpath: "../outside.png",
			fromPath: "notes/Note.md",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := store.ResolveLinkTarget(tt.linkpath, tt.fromPath)
			if ok != tt.wantOK {
				t.Fatalf("ResolveLinkTarget(%q, %q) ok = %v, want %v", tt.linkpath, tt.fromPath, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ResolveLinkTarget(%q, %q) = %q, want %q", tt.linkpath, tt.fromPath, got, tt.want)
			}
		})
	}
}
