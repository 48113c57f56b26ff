package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdo-app/tdo/todo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks, filtered by due bucket, project, or context.

The due buckets are: all (pending tasks), today (due today or
overdue), upcoming (due within the horizon), someday (pending with no
near deadline), done (completed), and any (everything).`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listDue     string
	listDone    bool
	listAll     bool
	listProject string
	listContext string
	listSort    string
	listJSON    bool
)

// summary
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show task counts per due bucket",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(listCmd, summaryCmd)

	listCmd.Flags().StringVar(&listDue, "due", "", "Filter by due bucket (all, today, upcoming, someday, done, any)")
	listCmd.Flags().BoolVar(&listDone, "done", false, "Show completed tasks (same as --due done)")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Show every task including completed (same as --due any)")
	listCmd.Flags().StringVarP(&listProject, "project", "p", "", "Filter by +project tag")
	listCmd.Flags().StringVarP(&listContext, "context", "c", "", "Filter by @context tag")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "Sort order (default, priority, due)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	view, err := buildListView(cfg.Todo.DefaultSort, cfg.Todo.UpcomingDays)
	if err != nil {
		return err
	}

	today := store.Today()
	items, err := view.Apply(store.Items(), today)
	if err != nil {
		return err
	}

	lines := lineNumbers(store.Items())

	if listJSON {
		return encodeJSONToStdout(itemsToJSON(items, lines))
	}

	printItemTable(items, lines, today)
	return nil
}

func buildListView(defaultSort string, upcomingDays int) (todo.View, error) {
	bucket := todo.DueBucket(listDue)
	switch {
	case listDue != "":
		// Apply reports a descriptive error for unknown buckets.
	case listDone:
		bucket = todo.BucketDone
	case listAll:
		bucket = todo.BucketAny
	default:
		bucket = todo.BucketAll
	}

	sortMode := listSort
	if sortMode == "" {
		sortMode = defaultSort
	}

	return todo.View{
		Due:          bucket,
		Project:      listProject,
		Context:      listContext,
		Sort:         todo.SortMode(sortMode),
		UpcomingDays: upcomingDays,
	}, nil
}

// lineNumbers maps each item to its 1-based position in the file, so
// filtered listings keep stable numbers.
func lineNumbers(items []*todo.Item) map[*todo.Item]int {
	numbers := make(map[*todo.Item]int, len(items))
	for i, item := range items {
		numbers[item] = i + 1
	}
	return numbers
}

type itemJSON struct {
	Line           int      `json:"line"`
	Completed      bool     `json:"completed"`
	Priority       string   `json:"priority,omitempty"`
	CreationDate   string   `json:"creation_date,omitempty"`
	CompletionDate string   `json:"completion_date,omitempty"`
	Due            string   `json:"due,omitempty"`
	Description    string   `json:"description"`
	Projects       []string `json:"projects,omitempty"`
	Contexts       []string `json:"contexts,omitempty"`
}

func itemsToJSON(items []*todo.Item, lines map[*todo.Item]int) []itemJSON {
	out := make([]itemJSON, 0, len(items))
	for _, item := range items {
		encoded := itemJSON{
			Line:        lines[item],
			Completed:   item.Completed,
			Priority:    item.Priority,
			Description: item.Description,
			Projects:    item.Projects(),
			Contexts:    item.Contexts(),
		}
		if item.CreationDate != nil {
			encoded.CreationDate = item.CreationDate.Format(todo.DateLayout)
		}
		if item.CompletionDate != nil {
			encoded.CompletionDate = item.CompletionDate.Format(todo.DateLayout)
		}
		if due := item.DueDate(); due != nil {
			encoded.Due = due.Format(todo.DateLayout)
		}
		out = append(out, encoded)
	}
	return out
}

func runSummary(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	counts := todo.CountItems(store.Items(), store.Today(), cfg.Todo.UpcomingDays)
	fmt.Printf("Today: %d  Upcoming: %d  Someday: %d  Done: %d\n",
		counts.Today, counts.Upcoming, counts.Someday, counts.Done)
	return nil
}
