// create.go implements the "alog create" command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gajare/accident-logs/internal/log"
	"github.com/gajare/accident-logs/internal/model"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an accident log",
	Long: `Create a new accident log. Date, name, and company are required;
the backend assigns the id.`,
	RunE: runCreate,
}

var createDraft model.LogDraft

func runCreate(cmd *cobra.Command, args []string) error {
	_, client, store, logger, err := collaborators()
	if err != nil {
		return err
	}
	defer store.Close()

	created, err := client.CreateLog(context.Background(), createDraft)
	if err != nil {
		_ = logger.Append(log.LogEvent{Event: log.EventRequestFailed, Operation: "create", Error: err.Error()})
		return err
	}
	_ = logger.Append(log.LogEvent{Event: log.EventLogCreated, LogID: created.ID})

	fmt.Printf("Created accident log #%d\n", created.ID)
	return nil
}

func draftFlags(cmd *cobra.Command, draft *model.LogDraft) {
	cmd.Flags().StringVar(&draft.Date, "date", "", "Date of the incident (YYYY-MM-DD)")
	cmd.Flags().IntVar(&draft.TimeHour, "hour", 0, "Hour of the incident (0-23)")
	cmd.Flags().IntVar(&draft.TimeMinute, "minute", 0, "Minute of the incident (0-59)")
	cmd.Flags().StringVar(&draft.InvolvedName, "name", "", "Name of the person involved")
	cmd.Flags().StringVar(&draft.InvolvedCompany, "company", "", "Company of the person involved")
	cmd.Flags().StringVar(&draft.Severity, "severity", "", "Severity label")
	cmd.Flags().StringVar(&draft.Location, "location", "", "Where the incident happened")
	cmd.Flags().StringVar(&draft.Comments, "comments", "", "Free-form notes")
}

func init() {
	draftFlags(createCmd, &createDraft)
}
