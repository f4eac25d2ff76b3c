package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var undo bool

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a todo item completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func init() {
	doneCmd.Flags().BoolVar(&undo, "undo", false, "mark the item not completed instead")
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	c, err := getClient()
	if err != nil {
		return err
	}

	item, err := c.SetCompleted(cmd.Context(), args[0], !undo)
	if err != nil {
		return err
	}

	state := "completed"
	if !item.Completed {
		state = "not completed"
	}
	fmt.Printf("%s  %s (%s)\n", item.ID, item.Title, state)
	return nil
}
