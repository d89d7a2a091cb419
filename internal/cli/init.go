// init.go implements the "alog init" command writing the default config.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gajare/accident-logs/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Create config.yaml in the config directory with the sandbox
defaults. Existing configuration is not overwritten unless --force
is given.`,
	RunE: runInit,
}

var initForce bool

func runInit(cmd *cobra.Command, args []string) error {
	dir := configDir
	if dir == "" {
		dir = config.DefaultDir()
	}

	if _, err := config.ReadConfig(dir); err == nil && !initForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", filepath.Join(dir, "config.yaml"))
	}

	if err := config.WriteConfig(dir, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Configuration written to %s\n", filepath.Join(dir, "config.yaml"))
	return nil
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config")
}
