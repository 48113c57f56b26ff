package notes_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tdo-app/tdo/notes"
)

func writeNote(t *testing.T, dataDir, slug, content string) {
	t.Helper()
	dir := filepath.Join(dataDir, notes.Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Meeting Notes", "meeting-notes"},
		{"  Q3 / Planning!  ", "q3-planning"},
		{"already-slugged", "already-slugged"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := notes.Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"heading", "# Meeting Notes\n\nbody", "Meeting Notes"},
		{"deep heading", "intro\n\n## Section Title\n", "Section Title"},
		{"no heading", "just text", "my-note"},
		{"empty heading", "#\n\ntext", "my-note"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := &notes.Note{Slug: "my-note", Content: tt.content}
			if got := note.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateAndLoad(t *testing.T) {
	dataDir := t.TempDir()

	path, err := notes.Create(dataDir, "Meeting Notes")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if filepath.Base(path) != "meeting-notes.md" {
		t.Errorf("path = %q, want meeting-notes.md basename", path)
	}

	note, err := notes.Load(dataDir, "meeting-notes")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if note.Title() != "Meeting Notes" {
		t.Errorf("Title() = %q, want %q", note.Title(), "Meeting Notes")
	}
}

func TestCreate_AlreadyExists(t *testing.T) {
	dataDir := t.TempDir()

	if _, err := notes.Create(dataDir, "dup"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := notes.Create(dataDir, "dup"); err == nil {
		t.Error("expected error for duplicate note")
	}
}

func TestCreate_EmptyName(t *testing.T) {
	dataDir := t.TempDir()

	if _, err := notes.Create(dataDir, "   "); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := notes.Create(dataDir, "!!!"); err == nil {
		t.Error("expected error for name with no usable characters")
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := notes.Load(t.TempDir(), "missing")
	if err == nil || !strings.Contains(err.Error(), "note not found") {
		t.Errorf("expected note-not-found error, got %v", err)
	}
}

func TestList(t *testing.T) {
	dataDir := t.TempDir()
	writeNote(t, dataDir, "beta", "# Beta\n")
	writeNote(t, dataDir, "alpha", "# Alpha\n")
	writeNote(t, dataDir, "ignored", "not markdown")
	if err := os.WriteFile(filepath.Join(dataDir, notes.Dir, "skip.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := notes.List(dataDir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("List returned %d notes, want 3", len(loaded))
	}
	if loaded[0].Slug != "alpha" || loaded[1].Slug != "beta" {
		t.Errorf("List order = [%s %s %s], want alphabetical", loaded[0].Slug, loaded[1].Slug, loaded[2].Slug)
	}
}

func TestList_MissingDirectory(t *testing.T) {
	loaded, err := notes.List(t.TempDir())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if loaded != nil {
		t.Errorf("List = %v, want nil for missing directory", loaded)
	}
}

func TestByModified(t *testing.T) {
	dataDir := t.TempDir()
	writeNote(t, dataDir, "older", "# Older\n")
	writeNote(t, dataDir, "newer", "# Newer\n")

	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(filepath.Join(dataDir, notes.Dir, "older.md"), past, past); err != nil {
		t.Fatal(err)
	}

	loaded, err := notes.ByModified(dataDir)
	if err != nil {
		t.Fatalf("ByModified: %v", err)
	}
	if loaded[0].Slug != "newer" {
		t.Errorf("first note = %q, want %q", loaded[0].Slug, "newer")
	}
}

func TestSearch(t *testing.T) {
	dataDir := t.TempDir()
	writeNote(t, dataDir, "groceries", "# Groceries\n\nmilk and eggs\n")
	writeNote(t, dataDir, "standup", "# Standup\n\ndiscuss the Milk Initiative\n")
	writeNote(t, dataDir, "unrelated", "# Unrelated\n\nnothing here\n")

	matched, err := notes.Search(dataDir, "MILK")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("Search matched %d notes, want 2", len(matched))
	}

	// Empty query returns everything.
	all, err := notes.Search(dataDir, "  ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Search with empty query matched %d notes, want 3", len(all))
	}
}

func TestSaveRewritesContent(t *testing.T) {
	dataDir := t.TempDir()
	writeNote(t, dataDir, "draft", "# Draft\n")

	note, err := notes.Load(dataDir, "draft")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	note.Content = "# Draft\n\nrevised body\n"
	if err := notes.Save(dataDir, note); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := notes.Load(dataDir, "draft")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(reloaded.Content, "revised body") {
		t.Errorf("Content = %q, want revised body present", reloaded.Content)
	}
}

func TestDelete(t *testing.T) {
	dataDir := t.TempDir()
	writeNote(t, dataDir, "gone", "# Gone\n")

	if err := notes.Delete(dataDir, "gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if exists, _ := notes.Exists(dataDir, "gone"); exists {
		t.Error("note still exists after Delete")
	}

	if err := notes.Delete(dataDir, "gone"); err == nil {
		t.Error("expected error deleting missing note")
	}
}
