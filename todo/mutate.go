package todo

import (
	"regexp"
	"strings"
	"time"
)

var dueTokenPattern = regexp.MustCompile(`due:\d{4}-\d{2}-\d{2}`)

// ToggleCompletion flips the completion flag. Completing stamps the
// completion date with today's date; reopening clears it. Priority,
// creation date, and description are untouched.
func (t *Item) ToggleCompletion(today time.Time) {
	t.Completed = !t.Completed
	if t.Completed {
		completed := Day(today)
		t.CompletionDate = &completed
	} else {
		t.CompletionDate = nil
	}
}

// SetPriority sets the priority from a letter, case-insensitive. Any
// input that is not exactly one ASCII letter clears the priority.
func (t *Item) SetPriority(priority string) {
	priority = strings.ToUpper(priority)
	if len(priority) == 1 && priority[0] >= 'A' && priority[0] <= 'Z' {
		t.Priority = priority
		return
	}
	t.Priority = ""
}

// SetDueDate rewrites the due: token in the description so the two can
// never disagree. An existing token is replaced in place; otherwise the
// token is appended. Passing nil strips the token and its leading
// whitespace.
func (t *Item) SetDueDate(due *time.Time) {
	if due == nil {
		t.Description = strings.TrimSpace(dueStripPattern.ReplaceAllString(t.Description, ""))
		return
	}

	token := "due:" + due.Format(DateLayout)
	if dueTokenPattern.MatchString(t.Description) {
		t.Description = dueTokenPattern.ReplaceAllString(t.Description, token)
		return
	}
	t.Description = strings.TrimSpace(t.Description + " " + token)
}

// AddProject appends a +project tag to the description. Adding a
// project that is already present is a no-op.
func (t *Item) AddProject(name string) {
	if t.HasProject(name) {
		return
	}
	t.Description = strings.TrimSpace(t.Description + " +" + name)
}

// AddContext appends an @context tag to the description. Adding a
// context that is already present is a no-op.
func (t *Item) AddContext(name string) {
	if t.HasContext(name) {
		return
	}
	t.Description = strings.TrimSpace(t.Description + " @" + name)
}
