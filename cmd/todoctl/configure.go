package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"todod/client"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Manage server profiles",
	Long: `Manage server profiles in the configuration file.

Profiles allow you to save connection settings for multiple todod servers
and switch between them using --profile or TODOD_PROFILE.

Configuration is stored in ~/.todod/config.yaml`,
}

var configureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured profiles",
	Long: `List all profiles configured in the config file.

The default profile is marked with an asterisk (*).`,
	RunE: runConfigureList,
}

var configureAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile",
	Long: `Add a new profile interactively.

You will be prompted for:
  - Endpoint URL
  - Credential token
  - Whether to set as default`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigureAdd,
}

var configureRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runConfigureRemove,
}

func init() {
	configureCmd.AddCommand(configureListCmd)
	configureCmd.AddCommand(configureAddCmd)
	configureCmd.AddCommand(configureRemoveCmd)

	rootCmd.AddCommand(configureCmd)
}

func runConfigureList(_ *cobra.Command, _ []string) error {
	cfg, err := client.LoadConfigFile(getConfigPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Println("No profiles configured.")
			fmt.Println("Run 'todoctl configure add <name>' to create one.")
			return nil
		}
		return fmt.Errorf("load config: %w", err)
	}

	if len(cfg.Profiles) == 0 {
		fmt.Println("No profiles configured.")
		fmt.Println("Run 'todoctl configure add <name>' to create one.")
		return nil
	}

	defaultProfile := cfg.DefaultProfile()
	for _, p := range cfg.Profiles {
		mark := " "
		if defaultProfile != nil && p.Name == defaultProfile.Name {
			mark = "*"
		}
		fmt.Printf("%s %-20s %s\n", mark, p.Name, p.Endpoint)
	}

	return nil
}

func runConfigureAdd(_ *cobra.Command, args []string) error {
	name := args[0]
	configPath := getConfigPath()

	cfg, err := client.LoadConfigFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = &client.ConfigFile{}
		} else {
			return fmt.Errorf("load config: %w", err)
		}
	}

	if cfg.GetProfile(name) != nil {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Profile '%s' already exists. Update it", name),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	endpointPrompt := promptui.Prompt{
		Label:   "Endpoint URL",
		Default: client.DefaultEndpoint,
		Validate: func(input string) error {
			if input == "" {
				return errors.New("endpoint URL is required")
			}
			parsedURL, parseErr := url.Parse(input)
			if parseErr != nil {
				return fmt.Errorf("invalid URL: %w", parseErr)
			}
			if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
				return errors.New("URL must start with http:// or https://")
			}
			return nil
		},
	}
	endpointURL, err := endpointPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	tokenPrompt := promptui.Prompt{
		Label: "Credential token (empty for a public server)",
		Mask:  '*',
	}
	tokenValue, err := tokenPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	defaultPrompt := promptui.Prompt{
		Label:     "Set as default profile",
		IsConfirm: true,
	}
	_, defaultErr := defaultPrompt.Run()
	makeDefault := defaultErr == nil

	cfg.SetProfile(client.Profile{
		Name:     name,
		Endpoint: endpointURL,
		Token:    tokenValue,
		Default:  makeDefault || len(cfg.Profiles) == 0,
	})

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("Profile '%s' saved.\n", name)
	return nil
}

func runConfigureRemove(_ *cobra.Command, args []string) error {
	name := args[0]
	configPath := getConfigPath()

	cfg, err := client.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if !cfg.RemoveProfile(name) {
		return fmt.Errorf("profile %q not found", name)
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("Profile '%s' removed.\n", name)
	return nil
}

func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
