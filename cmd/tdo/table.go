package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tdo-app/tdo/internal/ui"
	"github.com/tdo-app/tdo/todo"
)

// printItemTable prints items in a table format.
func printItemTable(items []*todo.Item, lines map[*todo.Item]int, today time.Time) {
	if len(items) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatItemTable(items, lines, today))
}

func formatItemTable(items []*todo.Item, lines map[*todo.Item]int, today time.Time) string {
	builder := ui.NewTableBuilder([]string{"N", "PRI", "DUE", "TASK"}, len(items))

	for _, item := range items {
		builder.AddRow([]string{
			strconv.Itoa(lines[item]),
			ui.FormatPriority(item.Priority),
			formatItemDue(item, today),
			formatItemTask(item),
		})
	}

	return builder.String()
}

func formatItemDue(item *todo.Item, today time.Time) string {
	if item.Completed {
		return "-"
	}
	return ui.FormatDue(item.DueDate(), todo.Day(today))
}

func formatItemTask(item *todo.Item) string {
	task := ui.TruncateTableCell(item.Description)
	if item.Completed {
		return ui.FormatDone(task)
	}
	return task
}
