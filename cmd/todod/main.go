package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "todod",
	Short:   "Token-gated todo list server",
	Long: `Todod is a small todo list server with a shared-secret credential
gate, a method-discriminated CRUD API, and pluggable item store
backends (memory, sqlite, postgres, dynamo).`,
}

func init() {
	rootCmd.PersistentFlags().StringSlice("config", nil, "config file path(s) (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("store-type", "", "store backend: memory, sqlite, postgres, dynamo (env: TODOD_STORE_TYPE)")
	rootCmd.PersistentFlags().String("store-dsn", "", "store connection string (env: TODOD_STORE_DSN)")
	rootCmd.PersistentFlags().String("table", "", "items table name (env: TODOD_STORE_TABLE)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
