// delete.go implements the "alog delete" command.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gajare/accident-logs/internal/log"
)

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an accident log",
	Long: `Delete an accident log by id. Prompts for confirmation unless
--yes is given; the delete cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteYes bool

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	if !deleteYes {
		fmt.Printf("Delete accident log #%d? This cannot be undone. [y/N] ", id)
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	_, client, store, logger, err := collaborators()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := client.DeleteLog(context.Background(), id); err != nil {
		_ = logger.Append(log.LogEvent{Event: log.EventRequestFailed, Operation: "delete", Error: err.Error()})
		return err
	}
	_ = logger.Append(log.LogEvent{Event: log.EventLogDeleted, LogID: id})

	fmt.Printf("Deleted accident log #%d\n", id)
	return nil
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
