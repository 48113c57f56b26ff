// Package todo implements the todo.txt task model: parsing a task line
// into a structured item, serializing it back, mutating fields while
// keeping the description text in sync, and querying collections of
// items with filters and stable sorts.
//
// A task line looks like:
//
//	x 2024-06-01 (A) 2024-05-20 Call dentist +health @phone due:2024-06-10
//
// Completion marker, completion date, priority, and creation date are
// positional prefixes tracked as fields. Project (+name) and context
// (@name) tags and the due: token live inside the free-form description
// and stay there verbatim: Projects, Contexts, and DueDate are computed
// from the description on every access, so editing the description text
// can never leave them stale.
package todo

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the strict date format used throughout todo.txt syntax.
const DateLayout = "2006-01-02"

// Item represents a single todo.txt task.
type Item struct {
	// Completed marks the task as done.
	Completed bool

	// Priority is a single uppercase letter A-Z, or empty for none.
	Priority string

	// CompletionDate is when the task was completed (nil when unset).
	CompletionDate *time.Time

	// CreationDate is when the task was created (nil when unset).
	CreationDate *time.Time

	// Description is the free-form task text, including any embedded
	// +project, @context, and due: tokens. It is the single source of
	// truth for those values.
	Description string
}

var (
	projectPattern = regexp.MustCompile(`\+(\w+)`)
	contextPattern = regexp.MustCompile(`@(\w+)`)
	duePattern     = regexp.MustCompile(`due:(\d{4}-\d{2}-\d{2})`)

	projectStripPattern = regexp.MustCompile(`\s*\+\w+`)
	contextStripPattern = regexp.MustCompile(`\s*@\w+`)
	dueStripPattern     = regexp.MustCompile(`\s*due:\d{4}-\d{2}-\d{2}`)
)

// Projects returns the +project tags embedded in the description, in
// order of appearance, duplicates preserved.
func (t *Item) Projects() []string {
	return tokenValues(projectPattern, t.Description)
}

// Contexts returns the @context tags embedded in the description, in
// order of appearance, duplicates preserved.
func (t *Item) Contexts() []string {
	return tokenValues(contextPattern, t.Description)
}

// DueDate returns the date of the first well-formed due: token in the
// description, or nil when there is none.
func (t *Item) DueDate() *time.Time {
	match := duePattern.FindStringSubmatch(t.Description)
	if match == nil {
		return nil
	}
	due, err := time.Parse(DateLayout, match[1])
	if err != nil {
		return nil
	}
	return &due
}

// CleanDescription returns the description with project, context, and
// due: tokens stripped, for display.
func (t *Item) CleanDescription() string {
	text := projectStripPattern.ReplaceAllString(t.Description, "")
	text = contextStripPattern.ReplaceAllString(text, "")
	text = dueStripPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// HasProject reports whether the description carries the exact project tag.
func (t *Item) HasProject(name string) bool {
	return containsString(t.Projects(), name)
}

// HasContext reports whether the description carries the exact context tag.
func (t *Item) HasContext(name string) bool {
	return containsString(t.Contexts(), name)
}

// Day truncates a time to its calendar date (UTC midnight), the
// granularity used for all todo.txt date comparisons.
func Day(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

func tokenValues(pattern *regexp.Regexp, text string) []string {
	matches := pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	values := make([]string, 0, len(matches))
	for _, match := range matches {
		values = append(values, match[1])
	}
	return values
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
