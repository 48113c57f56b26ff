package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/tdo-app/tdo/internal/ui"
	"github.com/tdo-app/tdo/todo"
)

var showCmd = &cobra.Command{
	Use:   "show <n>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

const detailIndent = 2

func runShow(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	items, err := resolveItems(store, args)
	if err != nil {
		return err
	}

	if showJSON {
		return encodeJSONToStdout(itemsToJSON(items, lineNumbers(store.Items())))
	}

	lines := lineNumbers(store.Items())
	width := terminalWidth()
	for i, item := range items {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(formatItemDetail(item, lines[item], store.Today(), width))
	}
	return nil
}

func formatItemDetail(item *todo.Item, line int, today time.Time, width int) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Task %d\n", line)
	writeDetailField(&builder, "Text", wrapDetailText(item.Description, width))
	writeDetailField(&builder, "Priority", ui.FormatPriority(item.Priority))
	writeDetailField(&builder, "Due", formatItemDue(item, today))
	if projects := item.Projects(); len(projects) > 0 {
		writeDetailField(&builder, "Projects", "+"+strings.Join(projects, " +"))
	}
	if contexts := item.Contexts(); len(contexts) > 0 {
		writeDetailField(&builder, "Contexts", "@"+strings.Join(contexts, " @"))
	}
	if item.CreationDate != nil {
		writeDetailField(&builder, "Created", item.CreationDate.Format(todo.DateLayout))
	}
	if item.Completed {
		completed := "yes"
		if item.CompletionDate != nil {
			completed = item.CompletionDate.Format(todo.DateLayout)
		}
		writeDetailField(&builder, "Completed", completed)
	}

	return builder.String()
}

func writeDetailField(builder *strings.Builder, label, value string) {
	prefix := strings.Repeat(" ", detailIndent)
	fmt.Fprintf(builder, "%s%-10s %s\n", prefix, label+":", value)
}

// wrapDetailText wraps long descriptions, indenting continuation lines
// to line up under the field value.
func wrapDetailText(value string, width int) string {
	const valueOffset = detailIndent + 11
	wrapWidth := width - valueOffset
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	wrapped := wordwrap.String(value, wrapWidth)
	lines := strings.Split(wrapped, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", valueOffset) + lines[i]
	}
	return strings.Join(lines, "\n")
}
