package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"graphic.png", true},
		{"anim.webp", true},
		{"notes.txt", false},
		{"archive.tar.gz", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		if got := IsImageFile(tt.filename); got != tt.expected {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.filename, got, tt.expected)
		}
	}
}

func TestListImageFiles(t *testing.T) {
	dir := t.TempDir()

	files := []string{"b.jpg", "a.png", "notes.txt"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "c.webp"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	listed, err := ListImageFiles(dir)
	if err != nil {
		t.Fatalf("ListImageFiles failed: %v", err)
	}

	if len(listed) != 3 {
		t.Fatalf("expected 3 image files, got %d: %v", len(listed), listed)
	}

	// Deterministic path order, non-images excluded
	expected := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(sub, "c.webp"),
	}
	for i, want := range expected {
		if listed[i] != want {
			t.Errorf("listed[%d] = %q, want %q", i, listed[i], want)
		}
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "exists.jpg")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("expected FileExists true for existing file")
	}

	if FileExists(filepath.Join(dir, "missing.jpg")) {
		t.Error("expected FileExists false for missing file")
	}

	if FileExists(dir) {
		t.Error("expected FileExists false for a directory")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	if !DirExists(dir) {
		t.Error("expected DirExists true for existing directory")
	}

	if DirExists(filepath.Join(dir, "missing")) {
		t.Error("expected DirExists false for missing directory")
	}
}
