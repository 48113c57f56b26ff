package todo

import (
	"sort"
	"time"
)

// DefaultUpcomingDays is the horizon used by upcoming views when the
// caller does not choose one.
const DefaultUpcomingDays = 5

// Pending returns the items that are not completed, in input order.
func Pending(items []*Item) []*Item {
	var result []*Item
	for _, item := range items {
		if !item.Completed {
			result = append(result, item)
		}
	}
	return result
}

// Completed returns the completed items, in input order.
func Completed(items []*Item) []*Item {
	var result []*Item
	for _, item := range items {
		if item.Completed {
			result = append(result, item)
		}
	}
	return result
}

// DueToday returns pending items due today or earlier. Overdue items
// are intentionally included.
func DueToday(items []*Item, today time.Time) []*Item {
	day := Day(today)
	var result []*Item
	for _, item := range Pending(items) {
		due := item.DueDate()
		if due != nil && !due.After(day) {
			result = append(result, item)
		}
	}
	return result
}

// DueUpcoming returns pending items due within the next horizonDays,
// excluding anything due today or earlier.
func DueUpcoming(items []*Item, today time.Time, horizonDays int) []*Item {
	day := Day(today)
	limit := day.AddDate(0, 0, horizonDays)
	var result []*Item
	for _, item := range Pending(items) {
		due := item.DueDate()
		if due != nil && due.After(day) && !due.After(limit) {
			result = append(result, item)
		}
	}
	return result
}

// Someday returns pending items with no due date.
func Someday(items []*Item) []*Item {
	var result []*Item
	for _, item := range Pending(items) {
		if item.DueDate() == nil {
			result = append(result, item)
		}
	}
	return result
}

// ByProject returns items carrying the exact project tag, completed or not.
func ByProject(items []*Item, name string) []*Item {
	var result []*Item
	for _, item := range items {
		if item.HasProject(name) {
			result = append(result, item)
		}
	}
	return result
}

// ByContext returns items carrying the exact context tag, completed or not.
func ByContext(items []*Item, name string) []*Item {
	var result []*Item
	for _, item := range items {
		if item.HasContext(name) {
			result = append(result, item)
		}
	}
	return result
}

// DistinctProjects returns every project tag used across items, sorted
// and deduplicated.
func DistinctProjects(items []*Item) []string {
	return distinctTokens(items, (*Item).Projects)
}

// DistinctContexts returns every context tag used across items, sorted
// and deduplicated.
func DistinctContexts(items []*Item) []string {
	return distinctTokens(items, (*Item).Contexts)
}

func distinctTokens(items []*Item, tokens func(*Item) []string) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		for _, token := range tokens(item) {
			seen[token] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	result := make([]string, 0, len(seen))
	for token := range seen {
		result = append(result, token)
	}
	sort.Strings(result)
	return result
}

// Counts summarizes how many items fall into each date bucket.
type Counts struct {
	Today    int
	Upcoming int
	Someday  int
	Done     int
}

// CountItems computes per-bucket totals for badge display. A
// horizonDays of zero or less falls back to DefaultUpcomingDays.
func CountItems(items []*Item, today time.Time, horizonDays int) Counts {
	if horizonDays <= 0 {
		horizonDays = DefaultUpcomingDays
	}
	return Counts{
		Today:    len(DueToday(items, today)),
		Upcoming: len(DueUpcoming(items, today, horizonDays)),
		Someday:  len(Someday(items)),
		Done:     len(Completed(items)),
	}
}
