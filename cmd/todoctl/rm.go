package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a todo item",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	c, err := getClient()
	if err != nil {
		return err
	}

	result, err := c.Delete(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", result.Message, result.ID)
	return nil
}
