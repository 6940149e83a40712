/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/coffeetrail/stockrelay/pkg/srclient"
	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "srcli",
	Short: "Manage coffee stock transfers between locations",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:1362", "srapid server to talk to")
}

func newClient() *srclient.Client {
	return srclient.NewClient(serverURL)
}

func printTransfer(tr *srmodel.TransferRequest) {
	fmt.Printf("#%d %s -> %s: %s %s %s (%s) [%s]\n",
		tr.ID, tr.SourceLocation, tr.DestinationLocation,
		tr.Quantity, tr.Unit, tr.CoffeeType, tr.QualityGrade,
		tr.Status.DisplayLabel())
	if tr.Notes != "" {
		fmt.Printf("   notes: %s\n", tr.Notes)
	}
}
