package webapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coffeetrail/stockrelay/pkg/relocation"
	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/coffeetrail/stockrelay/pkg/srdb/stor"
	"github.com/labstack/echo/v4"
)

type TransferController struct {
	submission      *relocation.Submission
	decisionHandler *relocation.DecisionHandler
	feeds           *relocation.FeedRegistry
	browser         *relocation.RecordsBrowser
}

func NewTransferController(submission *relocation.Submission, decisionHandler *relocation.DecisionHandler,
	feeds *relocation.FeedRegistry, browser *relocation.RecordsBrowser) *TransferController {
	return &TransferController{
		submission:      submission,
		decisionHandler: decisionHandler,
		feeds:           feeds,
		browser:         browser,
	}
}

func (c *TransferController) SubmitTransfer(ctx echo.Context) error {
	var req relocation.SubmissionRequest

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	tr, err := c.submission.Submit(req)
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusCreated, tr)
}

// PendingTransfersResponse carries the snapshot plus a stale marker so a
// client can keep showing the previous list while offering a retry when
// the latest refresh failed.
type PendingTransfersResponse struct {
	Destination string                    `json:"destination"`
	Transfers   []srmodel.TransferRequest `json:"transfers"`
	Stale       bool                      `json:"stale"`
	Error       string                    `json:"error,omitempty"`
}

func (c *TransferController) GetPendingTransfers(ctx echo.Context) error {
	destination := ctx.QueryParam("destination")
	if destination == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "destination is required")
	}

	feed := c.feeds.FeedFor(destination)

	resp := PendingTransfersResponse{Destination: destination}
	if err := feed.Refresh(); err != nil {
		resp.Stale = true
		resp.Error = "could not refresh pending transfers"
	}
	resp.Transfers = feed.Pending()

	return ctx.JSON(http.StatusOK, resp)
}

func (c *TransferController) AcceptTransfer(ctx echo.Context) error {
	var req struct {
		Notes string `json:"notes"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	tr, err := c.decisionHandler.Accept(id, req.Notes)
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, tr)
}

func (c *TransferController) DeclineTransfer(ctx echo.Context) error {
	var req struct {
		Notes string `json:"notes"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	tr, err := c.decisionHandler.Decline(id, req.Notes)
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, tr)
}

func (c *TransferController) GetTransferRecords(ctx echo.Context) error {
	query := relocation.BrowserQuery{
		Status:        ctx.QueryParam("status"),
		TimeRange:     ctx.QueryParam("range"),
		SearchTerm:    ctx.QueryParam("search"),
		SortField:     ctx.QueryParam("sort"),
		SortDirection: ctx.QueryParam("dir"),
	}

	records, err := c.browser.Records(query)
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, records)
}

func toHTTPError(err error) error {
	switch {
	case relocation.IsValidationError(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, stor.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, stor.ErrAlreadyProcessed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, relocation.ErrDecisionInFlight):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
