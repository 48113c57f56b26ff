package todo

import (
	"sort"
	"time"
)

// SortMode selects one of the list orderings. It is a closed set;
// ApplySort rejects anything else.
type SortMode string

const (
	// SortDefault orders by completion flag, then due date, then priority.
	SortDefault SortMode = "default"

	// SortPriority orders lettered priorities first, A before B.
	SortPriority SortMode = "priority"

	// SortDueDate orders dated items first, earliest due date first.
	SortDueDate SortMode = "due"
)

// ValidSortModes returns all valid sort mode values.
func ValidSortModes() []SortMode {
	return []SortMode{SortDefault, SortPriority, SortDueDate}
}

// IsValid returns true if the mode is a known valid value.
func (m SortMode) IsValid() bool {
	for _, valid := range ValidSortModes() {
		if m == valid {
			return true
		}
	}
	return false
}

// ApplySort returns a sorted copy of items for the given mode. An empty
// mode means SortDefault.
func ApplySort(items []*Item, mode SortMode) ([]*Item, error) {
	if mode == "" {
		mode = SortDefault
	}
	switch mode {
	case SortDefault:
		return SortByDeadlineThenPriority(items), nil
	case SortPriority:
		return SortByPriority(items), nil
	case SortDueDate:
		return SortByDueDate(items), nil
	}
	return nil, formatInvalidSortModeError(mode)
}

// maxDate is the sentinel that places undated items after every dated one.
var maxDate = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// SortByPriority returns a stable-sorted copy: lettered priorities
// first, A before B, then unprioritized items in their original order.
func SortByPriority(items []*Item) []*Item {
	sorted := copyItems(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priorityLetterKey(sorted[i]) < priorityLetterKey(sorted[j])
	})
	return sorted
}

// SortByDueDate returns a stable-sorted copy: earliest due date first,
// undated items last in their original order.
func SortByDueDate(items []*Item) []*Item {
	sorted := copyItems(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dueKey(sorted[i]).Before(dueKey(sorted[j]))
	})
	return sorted
}

// SortByDeadlineThenPriority returns a stable-sorted copy in the default
// display order: pending before completed, then by due date (undated
// last), then by priority rank (A=0..E=4, anything else 5).
func SortByDeadlineThenPriority(items []*Item) []*Item {
	sorted := copyItems(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		aDue, bDue := dueKey(a), dueKey(b)
		if !aDue.Equal(bDue) {
			return aDue.Before(bDue)
		}
		return PriorityRank(a.Priority) < PriorityRank(b.Priority)
	})
	return sorted
}

// PriorityRank maps priorities A..E to 0..4; anything else ranks last.
func PriorityRank(priority string) int {
	switch priority {
	case "A":
		return 0
	case "B":
		return 1
	case "C":
		return 2
	case "D":
		return 3
	case "E":
		return 4
	default:
		return 5
	}
}

// priorityLetterKey groups lettered priorities before unset ones while
// keeping letters in alphabetical order.
func priorityLetterKey(item *Item) string {
	if item.Priority != "" {
		return "0" + item.Priority
	}
	return "1Z"
}

func dueKey(item *Item) time.Time {
	if due := item.DueDate(); due != nil {
		return *due
	}
	return maxDate
}

func copyItems(items []*Item) []*Item {
	sorted := make([]*Item, len(items))
	copy(sorted, items)
	return sorted
}
