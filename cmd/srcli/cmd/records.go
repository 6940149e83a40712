package cmd

import (
	"fmt"
	"os"

	"github.com/coffeetrail/stockrelay/pkg/relocation"
	"github.com/spf13/cobra"
)

var recordsQuery relocation.BrowserQuery

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Browse historical relocation records",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := newClient().TransferRecords(recordsQuery)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Listing records failed: %s\n", err)
			os.Exit(1)
		}

		for i := range records {
			printTransfer(&records[i])
		}
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)

	recordsCmd.Flags().StringVar(&recordsQuery.Status, "status", "all", "status filter (all, pending, completed, cancelled)")
	recordsCmd.Flags().StringVar(&recordsQuery.TimeRange, "range", "all", "time range (all, hour, day, week, month, year)")
	recordsCmd.Flags().StringVar(&recordsQuery.SearchTerm, "search", "", "text search over managers, locations, coffee and notes")
	recordsCmd.Flags().StringVar(&recordsQuery.SortField, "sort", "created_at", "sort field")
	recordsCmd.Flags().StringVar(&recordsQuery.SortDirection, "dir", "desc", "sort direction (asc or desc)")
}
