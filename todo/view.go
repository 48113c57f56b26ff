package todo

import "time"

// DueBucket selects a date-based filter for list views.
type DueBucket string

const (
	// BucketAll shows every pending item regardless of due date.
	BucketAll DueBucket = "all"

	// BucketToday shows pending items due today or overdue.
	BucketToday DueBucket = "today"

	// BucketUpcoming shows pending items due within the horizon.
	BucketUpcoming DueBucket = "upcoming"

	// BucketSomeday shows pending items with no due date.
	BucketSomeday DueBucket = "someday"

	// BucketDone shows completed items.
	BucketDone DueBucket = "done"

	// BucketAny shows everything, completed included.
	BucketAny DueBucket = "any"
)

// ValidDueBuckets returns all valid due bucket values.
func ValidDueBuckets() []DueBucket {
	return []DueBucket{BucketAll, BucketToday, BucketUpcoming, BucketSomeday, BucketDone, BucketAny}
}

// IsValid returns true if the bucket is a known valid value.
func (b DueBucket) IsValid() bool {
	for _, valid := range ValidDueBuckets() {
		if b == valid {
			return true
		}
	}
	return false
}

// View is an immutable filter and sort selection. Callers build one per
// render and pass it in explicitly; the query layer holds no state.
type View struct {
	// Due selects the date bucket. Empty means BucketAll.
	Due DueBucket

	// Project, when set, keeps only items carrying that project tag.
	Project string

	// Context, when set, keeps only items carrying that context tag.
	Context string

	// Sort selects the ordering. Empty means SortDefault.
	Sort SortMode

	// UpcomingDays is the horizon for BucketUpcoming. Zero means
	// DefaultUpcomingDays.
	UpcomingDays int
}

// Apply filters and sorts items according to the view.
func (v View) Apply(items []*Item, today time.Time) ([]*Item, error) {
	bucket := v.Due
	if bucket == "" {
		bucket = BucketAll
	}

	horizon := v.UpcomingDays
	if horizon <= 0 {
		horizon = DefaultUpcomingDays
	}

	var result []*Item
	switch bucket {
	case BucketAll:
		result = Pending(items)
	case BucketToday:
		result = DueToday(items, today)
	case BucketUpcoming:
		result = DueUpcoming(items, today, horizon)
	case BucketSomeday:
		result = Someday(items)
	case BucketDone:
		result = Completed(items)
	case BucketAny:
		result = copyItems(items)
	default:
		return nil, formatInvalidDueBucketError(bucket)
	}

	if v.Project != "" {
		result = ByProject(result, v.Project)
	}
	if v.Context != "" {
		result = ByContext(result, v.Context)
	}

	return ApplySort(result, v.Sort)
}
