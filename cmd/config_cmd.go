package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/tally-finance/backend/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

func runConfig(_ *cobra.Command, _ []string) error {
	path := configPath()

	fmt.Printf("# Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Println("# Status: loaded")
	} else {
		fmt.Println("# Status: using defaults (no config file)")
	}
	fmt.Println()

	shown := cfg
	if shown.Database.Password != "" {
		shown.Database.Password = "********"
	}

	return toml.NewEncoder(os.Stdout).Encode(shown)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path := configPath()

	if config.Exists(path) && !flagForce {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}

	fmt.Printf("Wrote default configuration to %s\n", path)
	return nil
}
