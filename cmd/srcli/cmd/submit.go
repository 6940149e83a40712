package cmd

import (
	"fmt"
	"os"

	"github.com/coffeetrail/stockrelay/pkg/relocation"
	"github.com/spf13/cobra"
)

var submitReq relocation.SubmissionRequest

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a new stock transfer for destination approval",
	Run: func(cmd *cobra.Command, args []string) {
		tr, err := newClient().SubmitTransfer(submitReq)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Submit failed: %s\n", err)
			os.Exit(1)
		}

		fmt.Printf("Submitted transfer #%d, awaiting approval at %s\n", tr.ID, tr.DestinationLocation)
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVar(&submitReq.Manager, "manager", "", "initiating manager name")
	submitCmd.Flags().StringVar(&submitReq.SourceLocation, "from", "", "source location")
	submitCmd.Flags().StringVar(&submitReq.DestinationLocation, "to", "", "destination location")
	submitCmd.Flags().StringVar(&submitReq.CoffeeType, "coffee", "", "coffee type (eg arabica, robusta)")
	submitCmd.Flags().StringVar(&submitReq.QualityGrade, "grade", "", "quality grade for the coffee type")
	submitCmd.Flags().StringVar(&submitReq.Quantity, "quantity", "", "quantity to transfer")
	submitCmd.Flags().StringVar(&submitReq.Unit, "unit", "kg", "unit (kg, tons or bags)")
	submitCmd.Flags().StringVar(&submitReq.Reason, "reason", "", "why the relocation is requested")
}
