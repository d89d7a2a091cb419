// list.go implements the "alog list" command for fetching accident logs.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gajare/accident-logs/internal/log"
	"github.com/gajare/accident-logs/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List accident logs",
	Long: `Fetch the project's accident logs through the backend proxy.
With no flags the full list is returned; date, severity, and company
flags narrow it server-side.`,
	RunE: runList,
}

var listCriteria model.FilterCriteria

func runList(cmd *cobra.Command, args []string) error {
	_, client, store, logger, err := collaborators()
	if err != nil {
		return err
	}
	defer store.Close()

	logs, err := client.FetchLogs(context.Background(), listCriteria)
	if err != nil {
		_ = logger.Append(log.LogEvent{Event: log.EventRequestFailed, Operation: "fetch", Error: err.Error()})
		return err
	}
	_ = logger.Append(log.LogEvent{Event: log.EventLogsFetched, Count: len(logs), Filters: listCriteria.Describe()})

	if len(logs) == 0 {
		fmt.Println("No accident logs found.")
		return nil
	}

	fmt.Printf("%-5s  %-10s  %-6s  %-9s  %-20s  %s\n", "ID", "DATE", "TIME", "SEVERITY", "INVOLVED", "COMPANY")
	for _, rec := range logs {
		fmt.Printf("%-5d  %-10s  %-6s  %-9s  %-20s  %s\n",
			rec.ID, rec.Date, rec.TimeLabel(), rec.SeverityLabel(),
			rec.InvolvedName, rec.InvolvedCompany)
	}
	fmt.Printf("\n%d log(s)  |  %s\n", len(logs), listCriteria.Describe())

	return nil
}

func init() {
	listCmd.Flags().StringVar(&listCriteria.FromDate, "from", "", "Earliest date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listCriteria.ToDate, "to", "", "Latest date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listCriteria.Severity, "severity", "", "Severity to match")
	listCmd.Flags().StringVar(&listCriteria.Company, "company", "", "Involved company to match")
}
