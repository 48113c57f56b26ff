package editor

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"

	internalstrings "github.com/tdo-app/tdo/internal/strings"
	"github.com/tdo-app/tdo/todo"
)

// ItemData represents the data used to render the TOML editing template.
type ItemData struct {
	// Priority is the single uppercase priority letter, or "".
	Priority string
	// Due is the due date as YYYY-MM-DD, or "".
	Due string
	// Description is the item description, tags included.
	Description string
}

var dueTokenPattern = regexp.MustCompile(`\s*due:\d{4}-\d{2}-\d{2}`)

// DataFromItem creates ItemData from an existing item for editing.
// The due date moves into the frontmatter, so the editable description
// keeps its project and context tags but drops the due token.
func DataFromItem(item *todo.Item) ItemData {
	data := ItemData{
		Priority:    item.Priority,
		Description: strings.TrimSpace(dueTokenPattern.ReplaceAllString(item.Description, "")),
	}
	if due := item.DueDate(); due != nil {
		data.Due = due.Format(todo.DateLayout)
	}
	return data
}

var itemTemplate = template.Must(template.New("item").Parse(`priority = {{ printf "%q" .Priority }} # single letter A-Z, empty to clear
due = {{ printf "%q" .Due }} # YYYY-MM-DD, empty to clear
---
{{ .Description }}
`))

// RenderItemTOML renders the item data as an editable document: TOML
// frontmatter above a "---" separator, description below it.
func RenderItemTOML(data ItemData) (string, error) {
	var buf bytes.Buffer
	if err := itemTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedItem represents the parsed result from the editor output.
type ParsedItem struct {
	Priority    string `toml:"priority"`
	Due         string `toml:"due"`
	Description string
}

var priorityLetterPattern = regexp.MustCompile(`^[A-Z]$`)

// ParseItemTOML parses the edited document back into its fields.
func ParseItemTOML(content string) (*ParsedItem, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedItem
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	// Items are single lines, so a multi-line body collapses.
	parsed.Description = internalstrings.NormalizeWhitespace(body)
	parsed.Priority = strings.ToUpper(strings.TrimSpace(parsed.Priority))
	parsed.Due = strings.TrimSpace(parsed.Due)

	if parsed.Description == "" {
		return nil, fmt.Errorf("description must not be empty")
	}
	if parsed.Priority != "" && !priorityLetterPattern.MatchString(parsed.Priority) {
		return nil, fmt.Errorf("invalid priority %q: must be a single letter A-Z", parsed.Priority)
	}
	if parsed.Due != "" {
		if _, err := time.Parse(todo.DateLayout, parsed.Due); err != nil {
			return nil, fmt.Errorf("invalid due date %q: must be YYYY-MM-DD", parsed.Due)
		}
	}

	return &parsed, nil
}

// Apply writes the parsed fields onto an item.
func (p *ParsedItem) Apply(item *todo.Item) {
	item.Description = p.Description
	item.SetPriority(p.Priority)

	var due *time.Time
	if p.Due != "" {
		parsed, err := time.Parse(todo.DateLayout, p.Due)
		if err == nil {
			due = &parsed
		}
	}
	item.SetDueDate(due)
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

// EditItem opens the editor pre-populated from the item and returns
// the parsed result.
func EditItem(item *todo.Item) (*ParsedItem, error) {
	return EditItemWithData(DataFromItem(item))
}

// EditItemWithData opens the editor with pre-populated data and returns the parsed result.
func EditItemWithData(data ItemData) (*ParsedItem, error) {
	content, err := RenderItemTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "tdo-item-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseItemTOML(string(edited))
}
