package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Add a todo item",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, err := getClient()
	if err != nil {
		return err
	}

	item, err := c.Create(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Printf("Added %s  %s\n", item.ID, item.Title)
	return nil
}
