// status.go implements the "alog status" command showing session state.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gajare/accident-logs/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session status and recent activity",
	Long: `Display whether an access token is stored, when it was last
refreshed, and the most recent audit-log events.`,
	RunE: runStatus,
}

var statusEvents int

func runStatus(cmd *cobra.Command, args []string) error {
	_, client, store, logger, err := collaborators()
	if err != nil {
		return err
	}
	defer store.Close()

	st := session.StatusOf(client.Token())
	fmt.Printf("Session: %s\n", st.Label())
	if st.TokenPresent {
		if at, err := store.TokenUpdatedAt(); err == nil && !at.IsZero() {
			fmt.Printf("Token stored: %s\n", at.Format("2006-01-02 15:04:05"))
		}
	}

	events, err := logger.ReadAll()
	if err != nil {
		return fmt.Errorf("reading audit log: %w", err)
	}
	if len(events) == 0 || statusEvents <= 0 {
		return nil
	}

	if len(events) > statusEvents {
		events = events[len(events)-statusEvents:]
	}

	fmt.Println("\nRecent activity:")
	for _, e := range events {
		line := fmt.Sprintf("  %s  %-15s", e.Time.Format("2006-01-02 15:04:05"), e.Event)
		if e.LogID != 0 {
			line += fmt.Sprintf("  #%d", e.LogID)
		}
		if e.Filters != "" {
			line += "  " + e.Filters
		}
		if e.Error != "" {
			line += "  " + e.Error
		}
		fmt.Println(line)
	}

	return nil
}

func init() {
	statusCmd.Flags().IntVarP(&statusEvents, "events", "n", 10, "Number of recent events to show")
}
