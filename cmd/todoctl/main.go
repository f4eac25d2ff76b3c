package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todod/client"
)

var version = "dev"

var (
	profileName string
	endpoint    string
	token       string
)

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "todoctl",
	Short:   "Command line client for a todod server",
	Long: `Todoctl talks to a todod server. Connection settings come from a
named profile in ~/.todod/config.yaml (see 'todoctl configure'), or
from the --endpoint and --token flags.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "profile name (env: TODOD_PROFILE)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "server endpoint URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "credential token")
}

// getClient resolves flags and profiles into a ready Client.
func getClient() (*client.Client, error) {
	if endpoint != "" {
		return client.New(endpoint, token), nil
	}

	cfg, err := client.LoadConfigFile(getConfigPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.New("no profiles configured; run 'todoctl configure add <name>' or pass --endpoint")
		}
		return nil, fmt.Errorf("load config: %w", err)
	}

	name := profileName
	if name == "" {
		name = os.Getenv("TODOD_PROFILE")
	}

	var profile *client.Profile
	if name != "" {
		profile = cfg.GetProfile(name)
		if profile == nil {
			return nil, fmt.Errorf("profile %q not found", name)
		}
	} else {
		profile = cfg.DefaultProfile()
		if profile == nil {
			return nil, errors.New("no profiles configured; run 'todoctl configure add <name>'")
		}
	}

	var opts []client.Option
	if profile.Header != "" {
		opts = append(opts, client.WithCredentialHeader(profile.Header))
	}

	return client.New(profile.Endpoint, profile.Token, opts...), nil
}

func getConfigPath() string {
	if path := os.Getenv("TODOD_CONFIG"); path != "" {
		return path
	}
	return client.DefaultConfigPath()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
