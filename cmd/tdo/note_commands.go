package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdo-app/tdo/internal/editor"
	"github.com/tdo-app/tdo/internal/markdown"
	"github.com/tdo-app/tdo/internal/ui"
	"github.com/tdo-app/tdo/notes"
)

var noteCmd = &cobra.Command{
	Use:     "notes",
	Short:   "Manage markdown notes",
	Aliases: []string{"note"},
}

// notes list
var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE:  runNoteList,
}

var noteListByModified bool

// notes new
var noteNewCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new note and open it in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteNew,
}

// notes show
var noteShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Render a note to the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteShow,
}

var noteShowRaw bool

// notes edit
var noteEditCmd = &cobra.Command{
	Use:   "edit <slug>",
	Short: "Edit a note in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteEdit,
}

// notes search
var noteSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search note titles and bodies",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteSearch,
}

// notes rm
var noteRmCmd = &cobra.Command{
	Use:     "rm <slug>",
	Short:   "Delete a note",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteRm,
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteListCmd, noteNewCmd, noteShowCmd, noteEditCmd, noteSearchCmd, noteRmCmd)

	noteListCmd.Flags().BoolVar(&noteListByModified, "recent", false, "Sort by modification time, newest first")
	noteShowCmd.Flags().BoolVar(&noteShowRaw, "raw", false, "Print the raw markdown without rendering")
}

func runNoteList(cmd *cobra.Command, args []string) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}

	loaded, err := listNotes(dir)
	if err != nil {
		return err
	}

	printNoteTable(loaded)
	return nil
}

func listNotes(dir string) ([]*notes.Note, error) {
	if noteListByModified {
		return notes.ByModified(dir)
	}
	return notes.List(dir)
}

func runNoteNew(cmd *cobra.Command, args []string) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}

	path, err := notes.Create(dir, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Created note: %s\n", path)
	if !editor.IsInteractive() {
		return nil
	}
	return editor.Edit(path)
}

func runNoteShow(cmd *cobra.Command, args []string) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}

	note, err := notes.Load(dir, args[0])
	if err != nil {
		return err
	}

	if noteShowRaw {
		fmt.Print(note.Content)
		return nil
	}

	rendered := markdown.SafeRender(terminalWidth(), 0, []byte(note.Content))
	if len(rendered) == 0 {
		return nil
	}
	fmt.Println(string(rendered))
	return nil
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}

	slug := args[0]
	exists, err := notes.Exists(dir, slug)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("note not found: %s", slug)
	}

	path, err := notes.Path(dir, slug)
	if err != nil {
		return err
	}
	return editor.Edit(path)
}

func runNoteSearch(cmd *cobra.Command, args []string) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}

	matched, err := notes.Search(dir, args[0])
	if err != nil {
		return err
	}

	printNoteTable(matched)
	return nil
}

func runNoteRm(cmd *cobra.Command, args []string) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}

	slug := args[0]
	if err := notes.Delete(dir, slug); err != nil {
		return err
	}

	fmt.Printf("Deleted note: %s\n", slug)
	return nil
}

func printNoteTable(loaded []*notes.Note) {
	if len(loaded) == 0 {
		fmt.Println("No notes found.")
		return
	}

	builder := ui.NewTableBuilder([]string{"SLUG", "TITLE", "MODIFIED"}, len(loaded))
	for _, note := range loaded {
		builder.AddRow([]string{
			note.Slug,
			ui.TruncateTableCell(note.Title()),
			note.ModTime.Format("2006-01-02 15:04"),
		})
	}
	fmt.Print(builder.String())
}
