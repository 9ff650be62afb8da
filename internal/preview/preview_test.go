package preview

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFind_LexicographicFirstImage(t *testing.T) {
	moduleDir := t.TempDir()
	imagesDir := filepath.Join(moduleDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(imagesDir, "b.png"))
	writeFile(t, filepath.Join(imagesDir, "a.jpg"))
	writeFile(t, filepath.Join(imagesDir, "note.txt"))

	path, ok := Find(moduleDir)
	if !ok {
		t.Fatal("expected a preview")
	}
	if want := filepath.Join(imagesDir, "a.jpg"); path != want {
		t.Errorf("got %s, want %s", path, want)
	}
}

func TestFind_NoImagesDir(t *testing.T) {
	if path, ok := Find(t.TempDir()); ok {
		t.Errorf("expected no preview, got %s", path)
	}
}

func TestFind_NoRecognizedImage(t *testing.T) {
	moduleDir := t.TempDir()
	imagesDir := filepath.Join(moduleDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(imagesDir, "note.txt"))

	if path, ok := Find(moduleDir); ok {
		t.Errorf("expected no preview, got %s", path)
	}
}

func TestFind_CaseInsensitiveExtension(t *testing.T) {
	moduleDir := t.TempDir()
	imagesDir := filepath.Join(moduleDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(imagesDir, "PHOTO.PNG"))

	path, ok := Find(moduleDir)
	if !ok {
		t.Fatal("expected a preview")
	}
	if filepath.Base(path) != "PHOTO.PNG" {
		t.Errorf("got %s", path)
	}
}

func TestRawURL_StripsRelativePrefix(t *testing.T) {
	got := RawURL("owner/repo", "master", "./memes/petpet/images/a.jpg")
	want := "https://raw.githubusercontent.com/owner/repo/master/memes/petpet/images/a.jpg"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestRawURL_KeepsDottedNames(t *testing.T) {
	// An exact "./" prefix strip must not eat leading dots of real names.
	got := RawURL("owner/repo", "master", ".github/preview.png")
	want := "https://raw.githubusercontent.com/owner/repo/master/.github/preview.png"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestTreeURL(t *testing.T) {
	got := TreeURL("owner/repo", "master", "memes/petpet")
	want := "https://github.com/owner/repo/tree/master/memes/petpet"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
