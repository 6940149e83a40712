/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/coffeetrail/stockrelay/pkg/config"
	"github.com/coffeetrail/stockrelay/pkg/notify"
	"github.com/coffeetrail/stockrelay/pkg/relocation"
	"github.com/coffeetrail/stockrelay/pkg/srdb"
	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/coffeetrail/stockrelay/pkg/srdb/stor"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "srapid",
	Short: "Run the stockrelay transfer API server",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())

		c := config.MustLoadFromDotenv()
		db := srdb.MustConnectToDB()

		if c.GetKeyWithDefault("DB_AUTO_MIGRATE", "") == "true" {
			if err := db.AutoMigrate(&srmodel.TransferRequest{}); err != nil {
				log.Fatalf("Unable to migrate db: %s", err)
			}
		}

		stors := stor.NewGormStors(db)
		notifier := notify.LogNotifier{}
		catalog := srmodel.DefaultCatalog()

		pollInterval := c.GetDurationKeyWithDefault("SRAPID_POLL_INTERVAL", 30*time.Second)
		log.Infof("Pending feed poll interval: %s", pollInterval)

		feeds := relocation.NewFeedRegistry(stors.TransferRequestStor,
			relocation.WithPollInterval(pollInterval))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		feeds.StartPolling(ctx)

		setupRoutes(e, RouteOpts{
			submission: relocation.NewSubmission(stors.TransferRequestStor, catalog, notifier),
			decisionHandler: relocation.NewDecisionHandler(stors.TransferRequestStor, notifier,
				relocation.WithOnDecided(feeds.RefreshAll)),
			feeds:   feeds,
			browser: relocation.NewRecordsBrowser(stors.TransferRequestStor),
		})

		if err := e.Start(":" + c.GetKeyWithDefault("SRAPID_PORT", "1362")); err != nil {
			log.Fatalf("Unable to start server: %v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
