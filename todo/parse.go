package todo

import (
	"regexp"
	"strings"
	"time"
)

var (
	datePrefixPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+`)
	priorityPattern   = regexp.MustCompile(`^\(([A-Z])\)\s+`)
)

// Parse builds an Item from a raw todo.txt line. It never fails:
// unrecognized or malformed prefixes are simply left in the description.
//
// Prefixes are consumed in order. A leading "x " marks completion and
// may be followed by a completion date; a "(A) " token sets the
// priority; a remaining leading date becomes the creation date unless a
// completion date was already consumed. A date token that does not pass
// strict YYYY-MM-DD validation is not consumed.
func Parse(raw string) *Item {
	item := &Item{}
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "x ") {
		item.Completed = true
		text = text[2:]
		text = consumeDate(text, &item.CompletionDate)
	}

	if match := priorityPattern.FindStringSubmatch(text); match != nil {
		item.Priority = match[1]
		text = text[len(match[0]):]
	}

	if item.CompletionDate == nil {
		text = consumeDate(text, &item.CreationDate)
	}

	item.Description = strings.TrimSpace(text)
	return item
}

// consumeDate consumes a leading date token followed by whitespace.
// The cursor does not advance past an invalid date.
func consumeDate(text string, target **time.Time) string {
	match := datePrefixPattern.FindStringSubmatch(text)
	if match == nil {
		return text
	}
	parsed, err := time.Parse(DateLayout, match[1])
	if err != nil {
		return text
	}
	*target = &parsed
	return text[len(match[0]):]
}
