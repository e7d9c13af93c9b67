// Package main is the entry point for the users-cli application.
// It registers the operational sub-commands (schema migration, admin
// bootstrap, password hashing and token inspection) and executes them.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Nekstoreo/usuarios-service/cmd/users-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "users-cli",
		Short: "Operational tool for the users service",
		Long: `users-cli runs maintenance tasks against the users service storage.

Commands that touch the database or verify tokens read the service
configuration from --config, or from CONFIG_PATH when the flag is not set.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(commands.ConfigFlag, "", "Path to the service configuration file (defaults to $CONFIG_PATH)")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitDatabaseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize database commands: %w", err)
	}

	if err := commands.InitSecurityCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize security commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
