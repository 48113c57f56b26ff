// Package notes implements loading and managing markdown note documents.
//
// Notes are free-form markdown files that live alongside the todo list
// in <data dir>/notes/<slug>.md. A note's title is its first heading,
// falling back to the slug.
package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	internalstrings "github.com/tdo-app/tdo/internal/strings"
)

// Dir is the subdirectory of the data directory containing notes.
const Dir = "notes"

// Note represents a loaded note document.
type Note struct {
	// Slug is the note's filename without extension.
	Slug string

	// Content is the full markdown text of the note.
	Content string

	// ModTime is the file's last modification time.
	ModTime time.Time
}

// Title returns the note's first markdown heading, or the slug when
// the note has none.
func (n *Note) Title() string {
	for _, line := range strings.Split(n.Content, "\n") {
		trimmed := strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(trimmed, "#"); ok {
			title := strings.TrimSpace(strings.TrimLeft(after, "#"))
			if title != "" {
				return title
			}
		}
	}
	return n.Slug
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a free-form title into a filename slug.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Path returns the file path for a note by slug.
// It does not check whether the file exists.
func Path(dataDir, slug string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", fmt.Errorf("note name is required")
	}
	return filepath.Join(dataDir, Dir, slug+".md"), nil
}

// Exists returns true if a note with the given slug exists.
func Exists(dataDir, slug string) (bool, error) {
	path, err := Path(dataDir, slug)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Load loads a note by slug from the given data directory.
func Load(dataDir, slug string) (*Note, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("note name is required")
	}

	path, err := Path(dataDir, slug)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("note not found: %s", slug)
		}
		return nil, fmt.Errorf("read note %s: %w", slug, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat note %s: %w", slug, err)
	}

	return &Note{
		Slug:    slug,
		Content: internalstrings.NormalizeNewlines(string(data)),
		ModTime: info.ModTime(),
	}, nil
}

// List returns all notes in the data directory, sorted by slug.
func List(dataDir string) ([]*Note, error) {
	notesPath := filepath.Join(dataDir, Dir)

	entries, err := os.ReadDir(notesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read notes directory: %w", err)
	}

	var loaded []*Note
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".md") {
			continue
		}
		note, err := Load(dataDir, strings.TrimSuffix(name, ".md"))
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, note)
	}

	sort.Slice(loaded, func(i, j int) bool { return loaded[i].Slug < loaded[j].Slug })
	return loaded, nil
}

// ByModified returns all notes sorted most recently modified first.
func ByModified(dataDir string) ([]*Note, error) {
	loaded, err := List(dataDir)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(loaded, func(i, j int) bool { return loaded[i].ModTime.After(loaded[j].ModTime) })
	return loaded, nil
}

// Search returns notes whose title or content contains the query,
// case-insensitively, sorted by slug.
func Search(dataDir, query string) ([]*Note, error) {
	loaded, err := List(dataDir)
	if err != nil {
		return nil, err
	}

	needle := internalstrings.NormalizeLowerTrimSpace(query)
	if needle == "" {
		return loaded, nil
	}

	var matched []*Note
	for _, note := range loaded {
		if strings.Contains(strings.ToLower(note.Content), needle) ||
			strings.Contains(strings.ToLower(note.Title()), needle) {
			matched = append(matched, note)
		}
	}
	return matched, nil
}

// DefaultTemplate is the template content for a new note file.
const DefaultTemplate = `# %s
`

// Create creates a new note file titled after name.
// Returns the file path and an error if the note already exists or creation fails.
func Create(dataDir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("note name is required")
	}

	slug := Slugify(name)
	if slug == "" {
		return "", fmt.Errorf("note name %q has no usable characters", name)
	}

	path, err := Path(dataDir, slug)
	if err != nil {
		return "", err
	}

	exists, err := Exists(dataDir, slug)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("note already exists: %s", slug)
	}

	if err := os.MkdirAll(filepath.Join(dataDir, Dir), 0755); err != nil {
		return "", fmt.Errorf("create notes directory: %w", err)
	}

	content := fmt.Sprintf(DefaultTemplate, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write note file: %w", err)
	}

	return path, nil
}

// Save writes a note's content back to disk atomically.
func Save(dataDir string, note *Note) error {
	path, err := Path(dataDir, note.Slug)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create notes directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(note.Content), 0644); err != nil {
		return fmt.Errorf("write note file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace note file: %w", err)
	}
	return nil
}

// Delete removes a note by slug.
func Delete(dataDir, slug string) error {
	path, err := Path(dataDir, slug)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("note not found: %s", slug)
		}
		return fmt.Errorf("delete note %s: %w", slug, err)
	}
	return nil
}
