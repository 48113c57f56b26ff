package todo

import (
	"testing"
	"time"
)

// day parses a YYYY-MM-DD string for test fixtures.
func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return parsed
}

func dayPtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed := day(t, value)
	return &parsed
}

func descriptions(items []*Item) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.Description)
	}
	return result
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
