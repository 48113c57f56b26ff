package todo

import "strings"

// String renders the item back into todo.txt form.
//
// Completed items emit "x" and the completion date; pending items emit
// the priority and creation date. A completed item's priority and
// creation date are dropped from output, per todo.txt semantics.
func (t *Item) String() string {
	parts := make([]string, 0, 3)

	if t.Completed {
		parts = append(parts, "x")
		if t.CompletionDate != nil {
			parts = append(parts, t.CompletionDate.Format(DateLayout))
		}
	} else {
		if t.Priority != "" {
			parts = append(parts, "("+t.Priority+")")
		}
		if t.CreationDate != nil {
			parts = append(parts, t.CreationDate.Format(DateLayout))
		}
	}

	parts = append(parts, t.Description)
	return strings.Join(parts, " ")
}
