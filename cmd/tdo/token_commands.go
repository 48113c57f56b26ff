package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdo-app/tdo/todo"
)

// projects
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List every +project tag in use",
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

// contexts
var contextsCmd = &cobra.Command{
	Use:   "contexts",
	Short: "List every @context tag in use",
	Args:  cobra.NoArgs,
	RunE:  runContexts,
}

func init() {
	rootCmd.AddCommand(projectsCmd, contextsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	return printDistinctTokens(todo.DistinctProjects, "+")
}

func runContexts(cmd *cobra.Command, args []string) error {
	return printDistinctTokens(todo.DistinctContexts, "@")
}

func printDistinctTokens(distinct func([]*todo.Item) []string, prefix string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	for _, token := range distinct(store.Items()) {
		fmt.Println(prefix + token)
	}
	return nil
}
