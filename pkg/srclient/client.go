// Package srclient is the HTTP client for the srapid API, used by the
// srcli commands and by other services that submit or decide transfers
// remotely.
package srclient

import (
	"fmt"

	"github.com/coffeetrail/stockrelay/pkg/relocation"
	"github.com/coffeetrail/stockrelay/pkg/relocation/webapi"
	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	c *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		c: resty.New().SetBaseURL(baseURL),
	}
}

// APIError carries the status and message echo returns for failed calls,
// so callers can distinguish validation (400) from already-processed (409).
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("(HTTP Status: %d) %s", e.StatusCode, e.Message)
}

func (client *Client) SubmitTransfer(req relocation.SubmissionRequest) (*srmodel.TransferRequest, error) {
	var tr srmodel.TransferRequest

	resp, err := client.c.R().
		SetBody(req).
		SetResult(&tr).
		SetError(&APIError{}).
		Post("/api/transfers")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, toAPIError(resp)
	}

	return &tr, nil
}

func (client *Client) PendingTransfers(destination string) (*webapi.PendingTransfersResponse, error) {
	var pending webapi.PendingTransfersResponse

	resp, err := client.c.R().
		SetQueryParam("destination", destination).
		SetResult(&pending).
		SetError(&APIError{}).
		Get("/api/transfers/pending")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, toAPIError(resp)
	}

	return &pending, nil
}

func (client *Client) AcceptTransfer(id int, notes string) (*srmodel.TransferRequest, error) {
	return client.decide(id, notes, "accept")
}

func (client *Client) DeclineTransfer(id int, notes string) (*srmodel.TransferRequest, error) {
	return client.decide(id, notes, "decline")
}

func (client *Client) decide(id int, notes string, action string) (*srmodel.TransferRequest, error) {
	var tr srmodel.TransferRequest

	resp, err := client.c.R().
		SetBody(map[string]string{"notes": notes}).
		SetResult(&tr).
		SetError(&APIError{}).
		Post(fmt.Sprintf("/api/transfers/%d/%s", id, action))
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, toAPIError(resp)
	}

	return &tr, nil
}

func (client *Client) TransferRecords(query relocation.BrowserQuery) ([]srmodel.TransferRequest, error) {
	var records []srmodel.TransferRequest

	resp, err := client.c.R().
		SetQueryParams(map[string]string{
			"status": query.Status,
			"range":  query.TimeRange,
			"search": query.SearchTerm,
			"sort":   query.SortField,
			"dir":    query.SortDirection,
		}).
		SetResult(&records).
		SetError(&APIError{}).
		Get("/api/transfers")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, toAPIError(resp)
	}

	return records, nil
}

func toAPIError(resp *resty.Response) error {
	apiErr, ok := resp.Error().(*APIError)
	if !ok || apiErr == nil {
		apiErr = &APIError{Message: resp.Status()}
	}
	apiErr.StatusCode = resp.StatusCode()
	return apiErr
}
