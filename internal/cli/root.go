// Package cli defines Cobra command definitions for the alog CLI.
// This file contains the root command, shared collaborators, and help output.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gajare/accident-logs/internal/config"
	"github.com/gajare/accident-logs/internal/log"
	"github.com/gajare/accident-logs/internal/procore"
	"github.com/gajare/accident-logs/internal/session"
	"github.com/gajare/accident-logs/internal/tui"
	"github.com/gajare/accident-logs/internal/tui/app"
)

var (
	configDir string
	version   = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "alog",
	Short: "Procore accident-log client",
	Long: `Alog manages a Procore project's accident logs through a local
backend proxy. Run it without arguments in a terminal for the
interactive UI, or use the subcommands for scripted access.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch TUI if TTY, show help otherwise
		if !tui.IsTTY() {
			return cmd.Help()
		}

		cfg, client, store, logger, err := collaborators()
		if err != nil {
			return err
		}
		defer store.Close()

		return tui.Run(app.New(cfg, client, store, logger))
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// collaborators builds the shared dependencies from the config directory:
// config, API client with the persisted token loaded, session store, and
// audit logger. The caller closes the store.
func collaborators() (*config.Config, *procore.Client, *session.Store, *log.Logger, error) {
	dir := configDir
	if dir == "" {
		dir = config.DefaultDir()
	}

	cfg := config.Load(dir)

	store, err := session.NewStore(filepath.Join(dir, "alog.db"))
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("opening session store: %w", err)
	}

	logger, err := log.NewLogger(dir)
	if err != nil {
		store.Close()
		return nil, nil, nil, nil, fmt.Errorf("opening audit log: %w", err)
	}

	client := procore.NewClient(
		cfg.Backend.BaseURL,
		cfg.Backend.CompanyID,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second,
	)
	token, err := store.LoadToken()
	if err != nil {
		store.Close()
		return nil, nil, nil, nil, fmt.Errorf("loading token: %w", err)
	}
	client.SetToken(token)

	return cfg, client, store, logger, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default: $XDG_CONFIG_HOME/alog)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}
