package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all todo items",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	c, err := getClient()
	if err != nil {
		return err
	}

	items, err := c.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("No items.")
		return nil
	}

	for _, item := range items {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %s  %s\n", mark, item.ID, item.Title)
	}

	return nil
}
