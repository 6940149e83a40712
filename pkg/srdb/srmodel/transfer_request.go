package srmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest is a request to move a quantity of graded coffee stock
// from one location to another, subject to the destination manager's
// approval.
type TransferRequest struct {
	ID                  int             `json:"id"`
	UUID                string          `json:"uuid"`
	Manager             string          `json:"manager"`
	SourceLocation      string          `json:"source_location"`
	DestinationLocation string          `json:"destination_location"`
	CoffeeType          string          `json:"coffee_type"`
	QualityGrade        string          `json:"quality_grade"`
	Quantity            decimal.Decimal `json:"quantity" gorm:"type:decimal(14,3)"`
	Unit                Unit            `json:"unit"`
	Reason              string          `json:"reason"`
	Status              Status          `json:"status" gorm:"default:pending"`
	Notes               string          `json:"notes"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	ReceivedAt          *time.Time      `json:"received_at,omitempty"`
	DeclinedAt          *time.Time      `json:"declined_at,omitempty"`
}

func (TransferRequest) TableName() string {
	return "transfer_requests"
}

// IsTerminal reports whether the request has been decided. A terminal
// request never transitions again.
func (tr *TransferRequest) IsTerminal() bool {
	return tr.Status == StatusReceived || tr.Status == StatusDeclined
}
