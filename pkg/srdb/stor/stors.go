package stor

import (
	"time"

	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"gorm.io/gorm"
)

// Decision is a terminal transition to apply to a pending TransferRequest.
type Decision struct {
	Status srmodel.Status
	Notes  string
}

// ListFilter selects historical transfer requests for the records browser.
// An empty Statuses list matches every status; a zero CreatedAfter matches
// every time range.
type ListFilter struct {
	Statuses     []srmodel.Status
	CreatedAfter time.Time
}

type TransferRequestStor interface {
	CreateTransferRequest(tr *srmodel.TransferRequest) (*srmodel.TransferRequest, error)
	GetTransferRequestByID(id int) (*srmodel.TransferRequest, error)
	GetTransferRequestByUUID(trUUID string) (*srmodel.TransferRequest, error)
	ListPendingForDestination(location string) ([]srmodel.TransferRequest, error)
	ListTransferRequests(filter ListFilter) ([]srmodel.TransferRequest, error)

	// ApplyDecision moves a pending request to a terminal state. The update
	// is conditioned on the record still being pending; a request that was
	// already decided returns ErrAlreadyProcessed and is left untouched.
	ApplyDecision(id int, decision Decision) (*srmodel.TransferRequest, error)
}

type Stors struct {
	TransferRequestStor TransferRequestStor
}

func NewGormStors(db *gorm.DB) *Stors {
	return &Stors{
		TransferRequestStor: NewGormTransferRequestStor(db),
	}
}
