package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var decisionNotes string

var acceptCmd = &cobra.Command{
	Use:   "accept <transfer-id>",
	Short: "Accept a pending transfer as the destination manager",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustTransferID(args[0])

		tr, err := newClient().AcceptTransfer(id, decisionNotes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Accept failed: %s\n", err)
			os.Exit(1)
		}

		printTransfer(tr)
	},
}

var declineCmd = &cobra.Command{
	Use:   "decline <transfer-id>",
	Short: "Decline a pending transfer, a reason is required",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := mustTransferID(args[0])

		tr, err := newClient().DeclineTransfer(id, decisionNotes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Decline failed: %s\n", err)
			os.Exit(1)
		}

		printTransfer(tr)
	},
}

func mustTransferID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "transfer-id must be an integer, got %q\n", arg)
		os.Exit(1)
	}
	return id
}

func init() {
	rootCmd.AddCommand(acceptCmd)
	rootCmd.AddCommand(declineCmd)

	acceptCmd.Flags().StringVar(&decisionNotes, "notes", "", "acceptance notes (defaults to an acknowledgement)")
	declineCmd.Flags().StringVar(&decisionNotes, "notes", "", "reason for declining (required)")
}
