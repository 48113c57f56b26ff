package todo

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TodoFile is the name of the backing file inside the data directory.
const TodoFile = "todo.txt"

// Store owns an ordered list of items backed by a todo.txt file, one
// item per non-blank line. Mutating operations save eagerly; in-place
// field edits persist through Update or an explicit Save.
//
// The store assumes a single process with exclusive access to the data
// directory. Concurrent external edits are not detected; they are
// overwritten on the next save and picked up on the next Load.
type Store struct {
	path  string
	items []*Item
	now   func() time.Time
}

// OpenOptions configures a store.
type OpenOptions struct {
	// Now supplies the current time, for deterministic tests.
	// Defaults to time.Now.
	Now func() time.Time
}

// Open ensures the data directory exists and loads its todo.txt file.
// A missing file yields an empty store.
func Open(dir string, opts OpenOptions) (*Store, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	store := &Store{
		path: filepath.Join(dir, TodoFile),
		now:  opts.Now,
	}
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Items returns the items in file order. The slice is shared with the
// store; callers mutate items through Update.
func (s *Store) Items() []*Item {
	return s.items
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// Today returns the store clock's current calendar date.
func (s *Store) Today() time.Time {
	return Day(s.now())
}

// Load re-reads the backing file, replacing the in-memory items. Blank
// lines are skipped. A missing file is an empty collection, not an
// error; any other read failure is surfaced.
func (s *Store) Load() error {
	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.items = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read todo file: %w", err)
	}
	defer file.Close()

	var items []*Item
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items = append(items, Parse(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan todo file: %w", err)
	}

	s.items = items
	return nil
}

// Save overwrites the backing file with one line per item, in
// collection order. The in-memory items are untouched on failure.
func (s *Store) Save() error {
	var builder strings.Builder
	for _, item := range s.items {
		builder.WriteString(item.String())
		builder.WriteByte('\n')
	}

	// Write to temp file first, then rename into place.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(builder.String()), 0644); err != nil {
		return fmt.Errorf("write todo file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename todo file: %w", err)
	}
	return nil
}

// AddOptions configures Add.
type AddOptions struct {
	// Priority is applied only when the parsed line carries none.
	Priority string
}

// Add parses raw into a new item, stamps today's date as the creation
// date when the line does not carry one, appends it, and saves.
func (s *Store) Add(raw string, opts AddOptions) (*Item, error) {
	item := Parse(raw)

	if item.CreationDate == nil {
		created := s.Today()
		item.CreationDate = &created
	}
	if opts.Priority != "" && item.Priority == "" {
		item.SetPriority(opts.Priority)
	}

	s.items = append(s.items, item)
	if err := s.Save(); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove deletes the item by identity and saves. Removing an item that
// is not in the store is a no-op.
func (s *Store) Remove(item *Item) error {
	for i, candidate := range s.items {
		if candidate == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.Save()
		}
	}
	return nil
}

// Update applies fn to the item and saves, so a field edit can never be
// left unpersisted.
func (s *Store) Update(item *Item, fn func(*Item)) error {
	fn(item)
	return s.Save()
}

// Toggle flips the item's completion using the store clock and saves.
func (s *Store) Toggle(item *Item) error {
	return s.Update(item, func(it *Item) {
		it.ToggleCompletion(s.now())
	})
}

// At returns the item at the 1-based position n in file order.
func (s *Store) At(n int) (*Item, error) {
	if n < 1 || n > len(s.items) {
		return nil, fmt.Errorf("%w: %d (list has %d)", ErrNoSuchItem, n, len(s.items))
	}
	return s.items[n-1], nil
}
