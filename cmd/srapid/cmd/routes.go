package cmd

import (
	"github.com/coffeetrail/stockrelay/pkg/relocation"
	"github.com/coffeetrail/stockrelay/pkg/relocation/webapi"
	"github.com/labstack/echo/v4"
)

type RouteOpts struct {
	submission      *relocation.Submission
	decisionHandler *relocation.DecisionHandler
	feeds           *relocation.FeedRegistry
	browser         *relocation.RecordsBrowser
}

func setupRoutes(e *echo.Echo, opts RouteOpts) {
	g := e.Group("/api")

	transferController := webapi.NewTransferController(opts.submission, opts.decisionHandler,
		opts.feeds, opts.browser)

	g.POST("/transfers", transferController.SubmitTransfer)
	g.GET("/transfers", transferController.GetTransferRecords)
	g.GET("/transfers/pending", transferController.GetPendingTransfers)
	g.POST("/transfers/:id/accept", transferController.AcceptTransfer)
	g.POST("/transfers/:id/decline", transferController.DeclineTransfer)
}
