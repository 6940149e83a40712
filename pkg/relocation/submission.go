package relocation

import (
	"fmt"

	"github.com/coffeetrail/stockrelay/pkg/notify"
	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/coffeetrail/stockrelay/pkg/srdb/stor"
	"github.com/shopspring/decimal"
)

// SubmissionRequest carries the source manager's form input. Quantity is
// the raw string from the form so that malformed input is rejected rather
// than silently coerced to zero.
type SubmissionRequest struct {
	Manager             string `json:"manager"`
	SourceLocation      string `json:"source_location"`
	DestinationLocation string `json:"destination_location"`
	CoffeeType          string `json:"coffee_type"`
	QualityGrade        string `json:"quality_grade"`
	Quantity            string `json:"quantity"`
	Unit                string `json:"unit"`
	Reason              string `json:"reason"`
}

// Submission validates and persists new transfer requests.
type Submission struct {
	transferRequestStor stor.TransferRequestStor
	catalog             *srmodel.Catalog
	notifier            notify.Notifier
}

func NewSubmission(transferRequestStor stor.TransferRequestStor, catalog *srmodel.Catalog, notifier notify.Notifier) *Submission {
	return &Submission{
		transferRequestStor: transferRequestStor,
		catalog:             catalog,
		notifier:            notifier,
	}
}

// Submit persists a new pending transfer request. On any error the caller
// must keep its form state so the manager can correct and retry; only a
// non-nil return confirms the record exists.
func (s *Submission) Submit(req SubmissionRequest) (*srmodel.TransferRequest, error) {
	quantity, unit, err := s.validate(req)
	if err != nil {
		s.notifier.Notify(notify.Notification{
			Title:       "Transfer not submitted",
			Description: err.Error(),
			Variant:     notify.VariantDestructive,
		})
		return nil, err
	}

	tr := &srmodel.TransferRequest{
		Manager:             req.Manager,
		SourceLocation:      req.SourceLocation,
		DestinationLocation: req.DestinationLocation,
		CoffeeType:          req.CoffeeType,
		QualityGrade:        req.QualityGrade,
		Quantity:            quantity,
		Unit:                unit,
		Reason:              req.Reason,
	}

	created, err := s.transferRequestStor.CreateTransferRequest(tr)
	if err != nil {
		s.notifier.Notify(notify.Notification{
			Title:       "Transfer submission failed",
			Description: fmt.Sprintf("Could not save the transfer to %s. Try again.", req.DestinationLocation),
			Variant:     notify.VariantDestructive,
		})
		return nil, fmt.Errorf("creating transfer request: %w", err)
	}

	s.notifier.Notify(notify.Notification{
		Title:       "Transfer submitted",
		Description: fmt.Sprintf("Transfer of %s %s %s to %s is awaiting approval.", quantity, unit, req.CoffeeType, req.DestinationLocation),
		Variant:     notify.VariantSuccess,
	})

	return created, nil
}

func (s *Submission) validate(req SubmissionRequest) (decimal.Decimal, srmodel.Unit, error) {
	required := []struct {
		field string
		value string
	}{
		{"manager", req.Manager},
		{"source_location", req.SourceLocation},
		{"destination_location", req.DestinationLocation},
		{"coffee_type", req.CoffeeType},
		{"quality_grade", req.QualityGrade},
		{"quantity", req.Quantity},
		{"unit", req.Unit},
	}

	for _, r := range required {
		if r.value == "" {
			return decimal.Zero, "", validationError(r.field, "is required")
		}
	}

	if req.SourceLocation == req.DestinationLocation {
		return decimal.Zero, "", validationError("destination_location", "must differ from the source location")
	}

	if !s.catalog.HasCoffeeType(req.CoffeeType) {
		return decimal.Zero, "", validationError("coffee_type", "unknown coffee type %q", req.CoffeeType)
	}

	if !s.catalog.ValidGrade(req.CoffeeType, req.QualityGrade) {
		return decimal.Zero, "", validationError("quality_grade", "%q is not a valid grade for %s", req.QualityGrade, req.CoffeeType)
	}

	unit, err := srmodel.ParseUnit(req.Unit)
	if err != nil {
		return decimal.Zero, "", validationError("unit", "must be one of kg, tons or bags")
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return decimal.Zero, "", validationError("quantity", "%q is not a number", req.Quantity)
	}

	if quantity.Sign() <= 0 {
		return decimal.Zero, "", validationError("quantity", "must be greater than zero")
	}

	return quantity, unit, nil
}
