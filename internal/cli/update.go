// update.go implements the "alog update" command.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gajare/accident-logs/internal/log"
	"github.com/gajare/accident-logs/internal/model"
)

var updateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update an accident log",
	Long: `Update an existing accident log. The current record is fetched
first; only fields whose flags are given change.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var updateDraft model.LogDraft

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	_, client, store, logger, err := collaborators()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := client.GetLog(context.Background(), id)
	if err != nil {
		return err
	}

	draft := model.LogDraft{
		Date:            rec.Date,
		TimeHour:        rec.TimeHour,
		TimeMinute:      rec.TimeMinute,
		InvolvedName:    rec.InvolvedName,
		InvolvedCompany: rec.InvolvedCompany,
		Severity:        rec.Severity,
		Location:        rec.Location,
		Comments:        rec.Comments,
	}
	applyChanged(cmd, &draft)

	if _, err := client.UpdateLog(context.Background(), id, draft); err != nil {
		_ = logger.Append(log.LogEvent{Event: log.EventRequestFailed, Operation: "update", Error: err.Error()})
		return err
	}
	_ = logger.Append(log.LogEvent{Event: log.EventLogUpdated, LogID: id})

	fmt.Printf("Updated accident log #%d\n", id)
	return nil
}

// applyChanged copies only the fields whose flags were set on the command
// line into draft, leaving the fetched values in place otherwise.
func applyChanged(cmd *cobra.Command, draft *model.LogDraft) {
	set := map[string]*string{
		"date":     &draft.Date,
		"name":     &draft.InvolvedName,
		"company":  &draft.InvolvedCompany,
		"severity": &draft.Severity,
		"location": &draft.Location,
		"comments": &draft.Comments,
	}
	src := map[string]string{
		"date":     updateDraft.Date,
		"name":     updateDraft.InvolvedName,
		"company":  updateDraft.InvolvedCompany,
		"severity": updateDraft.Severity,
		"location": updateDraft.Location,
		"comments": updateDraft.Comments,
	}
	for flag, dst := range set {
		if cmd.Flags().Changed(flag) {
			*dst = src[flag]
		}
	}
	if cmd.Flags().Changed("hour") {
		draft.TimeHour = updateDraft.TimeHour
	}
	if cmd.Flags().Changed("minute") {
		draft.TimeMinute = updateDraft.TimeMinute
	}
}

func init() {
	draftFlags(updateCmd, &updateDraft)
}
