package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	upcomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
	priorityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// nearHorizonDays bounds the relative "+N days" form; farther dates
// show the plain date.
const nearHorizonDays = 5

// FormatDue renders a due date relative to today: "Overdue (N days)",
// "Today", "Tomorrow", "+N days" within the near horizon, otherwise
// the plain YYYY-MM-DD date. A nil due date renders as "-".
func FormatDue(due *time.Time, today time.Time) string {
	if due == nil {
		return "-"
	}

	days := int(due.Sub(today).Hours() / 24)
	switch {
	case days < 0:
		return overdueStyle.Render(fmt.Sprintf("Overdue (%d days)", -days))
	case days == 0:
		return todayStyle.Render("Today")
	case days == 1:
		return upcomingStyle.Render("Tomorrow")
	case days <= nearHorizonDays:
		return upcomingStyle.Render(fmt.Sprintf("+%d days", days))
	default:
		return due.Format("2006-01-02")
	}
}

// FormatPriority renders a priority letter, or "-" when unset.
func FormatPriority(priority string) string {
	if priority == "" {
		return "-"
	}
	return priorityStyle.Render("(" + priority + ")")
}

// FormatDone renders a completed item's description in a muted style.
func FormatDone(description string) string {
	return doneStyle.Render(description)
}
