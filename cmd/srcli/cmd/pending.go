package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pendingCmd = &cobra.Command{
	Use:   "pending <location>",
	Short: "List transfers awaiting a decision at a location",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pending, err := newClient().PendingTransfers(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Listing pending transfers failed: %s\n", err)
			os.Exit(1)
		}

		if pending.Stale {
			fmt.Fprintf(os.Stderr, "Warning: showing the last known list, refresh failed (%s)\n", pending.Error)
		}

		if len(pending.Transfers) == 0 {
			fmt.Printf("No pending transfers for %s\n", pending.Destination)
			return
		}

		for i := range pending.Transfers {
			printTransfer(&pending.Transfers[i])
		}
	},
}

func init() {
	rootCmd.AddCommand(pendingCmd)
}
