package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tdo-app/tdo/internal/editor"
	"github.com/tdo-app/tdo/todo"
)

// add
var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a task",
	Long: `Add a task in todo.txt format.

The text may carry a "(A)" priority prefix, +project and @context
tags, and a due:YYYY-MM-DD token. The creation date is stamped
automatically when the text does not include one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var addPriority string

// done
var doneCmd = &cobra.Command{
	Use:   "done <n>...",
	Short: "Toggle completion of one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDone,
}

// rm
var rmCmd = &cobra.Command{
	Use:     "rm <n>...",
	Short:   "Delete one or more tasks",
	Aliases: []string{"delete"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRm,
}

// pri
var priCmd = &cobra.Command{
	Use:   "pri <n> <letter>",
	Short: "Set a task's priority (use '-' to clear)",
	Args:  cobra.ExactArgs(2),
	RunE:  runPri,
}

// due
var dueCmd = &cobra.Command{
	Use:   "due <n> <date>",
	Short: "Set a task's due date as YYYY-MM-DD (use '-' to clear)",
	Args:  cobra.ExactArgs(2),
	RunE:  runDue,
}

// edit
var editCmd = &cobra.Command{
	Use:   "edit [n]",
	Short: "Edit a task in $EDITOR, or the whole list when no task is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(addCmd, doneCmd, rmCmd, priCmd, dueCmd, editCmd)

	addCmd.Flags().StringVarP(&addPriority, "pri", "P", "", "Priority letter applied when the text has none")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	item, err := store.Add(strings.Join(args, " "), todo.AddOptions{Priority: addPriority})
	if err != nil {
		return err
	}

	fmt.Printf("Added: %s\n", item.String())
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	items, err := resolveItems(store, args)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := store.Toggle(item); err != nil {
			return err
		}
		if item.Completed {
			fmt.Printf("Done: %s\n", item.Description)
		} else {
			fmt.Printf("Reopened: %s\n", item.Description)
		}
	}
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	// Resolve every number before removing anything, so later numbers
	// are not shifted by earlier removals.
	items, err := resolveItems(store, args)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := store.Remove(item); err != nil {
			return err
		}
		fmt.Printf("Deleted: %s\n", item.Description)
	}
	return nil
}

func runPri(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	item, err := resolveItem(store, args[0])
	if err != nil {
		return err
	}

	letter := strings.ToUpper(args[1])
	if letter == "-" {
		letter = ""
	}
	if letter != "" && !isPriorityLetter(letter) {
		return fmt.Errorf("invalid priority %q: must be a single letter A-Z", args[1])
	}

	if err := store.Update(item, func(it *todo.Item) {
		it.SetPriority(letter)
	}); err != nil {
		return err
	}

	fmt.Printf("Updated: %s\n", item.String())
	return nil
}

func runDue(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	item, err := resolveItem(store, args[0])
	if err != nil {
		return err
	}

	var due *time.Time
	if args[1] != "-" {
		parsed, err := time.Parse(todo.DateLayout, args[1])
		if err != nil {
			return fmt.Errorf("invalid due date %q: must be YYYY-MM-DD", args[1])
		}
		due = &parsed
	}

	if err := store.Update(item, func(it *todo.Item) {
		it.SetDueDate(due)
	}); err != nil {
		return err
	}

	fmt.Printf("Updated: %s\n", item.String())
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		// Whole-file edit, then reload to pick up the changes.
		if err := editor.Edit(store.Path()); err != nil {
			return err
		}
		return store.Load()
	}

	item, err := resolveItem(store, args[0])
	if err != nil {
		return err
	}

	parsed, err := editor.EditItem(item)
	if err != nil {
		return err
	}

	if err := store.Update(item, func(it *todo.Item) {
		parsed.Apply(it)
	}); err != nil {
		return err
	}

	fmt.Printf("Updated: %s\n", item.String())
	return nil
}

func resolveItem(store *todo.Store, arg string) (*todo.Item, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid task number %q", arg)
	}
	return store.At(n)
}

func resolveItems(store *todo.Store, args []string) ([]*todo.Item, error) {
	items := make([]*todo.Item, 0, len(args))
	for _, arg := range args {
		item, err := resolveItem(store, arg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func isPriorityLetter(value string) bool {
	return len(value) == 1 && value[0] >= 'A' && value[0] <= 'Z'
}
