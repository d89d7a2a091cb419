// show.go implements the "alog show" command printing a single record.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gajare/accident-logs/internal/model"
)

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one accident log",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	_, client, store, _, err := collaborators()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := client.GetLog(context.Background(), id)
	if err != nil {
		return err
	}

	printLog(rec)
	return nil
}

func printLog(rec model.AccidentLog) {
	fmt.Printf("Accident Log #%d\n\n", rec.ID)
	fmt.Printf("  Date:      %s\n", rec.Date)
	fmt.Printf("  Time:      %s\n", rec.TimeLabel())
	fmt.Printf("  Involved:  %s (%s)\n", rec.InvolvedName, rec.InvolvedCompany)
	fmt.Printf("  Severity:  %s\n", rec.SeverityLabel())
	if rec.Location != "" {
		fmt.Printf("  Location:  %s\n", rec.Location)
	}
	if rec.Comments != "" {
		fmt.Printf("  Comments:  %s\n", rec.Comments)
	}
}
