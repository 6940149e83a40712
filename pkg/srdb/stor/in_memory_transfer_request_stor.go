package stor

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/hashicorp/go-uuid"
)

// InMemoryTransferRequestStor implements TransferRequestStor against an
// in-memory slice. It applies the same pending-only precondition as the
// Gorm store and is safe for concurrent use, so tests can exercise the
// double-decision race without a database. Setting ErrToReturn makes every
// operation fail with that error, for store-failure tests.
type InMemoryTransferRequestStor struct {
	ErrToReturn error

	mu               sync.Mutex
	transferRequests []srmodel.TransferRequest
	lastID           int
}

func NewInMemoryTransferRequestStor(transferRequests []srmodel.TransferRequest) *InMemoryTransferRequestStor {
	return &InMemoryTransferRequestStor{
		transferRequests: transferRequests,
		lastID:           10000,
	}
}

func (s *InMemoryTransferRequestStor) CreateTransferRequest(tr *srmodel.TransferRequest) (*srmodel.TransferRequest, error) {
	if s.ErrToReturn != nil {
		return nil, s.ErrToReturn
	}

	var (
		err    error
		trUUID string
	)

	if trUUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID = s.lastID + 1

	now := time.Now()
	created := *tr
	created.ID = s.lastID
	created.UUID = trUUID
	created.Status = srmodel.StatusPending
	// Like the Gorm store, a caller-set CreatedAt is preserved; only a
	// zero value defaults to now.
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}
	if created.UpdatedAt.IsZero() {
		created.UpdatedAt = now
	}

	s.transferRequests = append(s.transferRequests, created)

	return &created, nil
}

func (s *InMemoryTransferRequestStor) GetTransferRequestByID(id int) (*srmodel.TransferRequest, error) {
	if s.ErrToReturn != nil {
		return nil, s.ErrToReturn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tr := range s.transferRequests {
		if tr.ID == id {
			found := tr
			return &found, nil
		}
	}

	return nil, ErrNotFound
}

func (s *InMemoryTransferRequestStor) GetTransferRequestByUUID(trUUID string) (*srmodel.TransferRequest, error) {
	if s.ErrToReturn != nil {
		return nil, s.ErrToReturn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tr := range s.transferRequests {
		if tr.UUID == trUUID {
			found := tr
			return &found, nil
		}
	}

	return nil, ErrNotFound
}

func (s *InMemoryTransferRequestStor) ListPendingForDestination(location string) ([]srmodel.TransferRequest, error) {
	if s.ErrToReturn != nil {
		return nil, s.ErrToReturn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matching []srmodel.TransferRequest
	for _, tr := range s.transferRequests {
		if tr.DestinationLocation == location && tr.Status == srmodel.StatusPending {
			matching = append(matching, tr)
		}
	}

	sortByCreatedAtDesc(matching)

	return matching, nil
}

func (s *InMemoryTransferRequestStor) ListTransferRequests(filter ListFilter) ([]srmodel.TransferRequest, error) {
	if s.ErrToReturn != nil {
		return nil, s.ErrToReturn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matching []srmodel.TransferRequest
	for _, tr := range s.transferRequests {
		if len(filter.Statuses) != 0 && !statusIn(tr.Status, filter.Statuses) {
			continue
		}
		if !filter.CreatedAfter.IsZero() && tr.CreatedAt.Before(filter.CreatedAfter) {
			continue
		}
		matching = append(matching, tr)
	}

	sortByCreatedAtDesc(matching)

	return matching, nil
}

func (s *InMemoryTransferRequestStor) ApplyDecision(id int, decision Decision) (*srmodel.TransferRequest, error) {
	if s.ErrToReturn != nil {
		return nil, s.ErrToReturn
	}

	if decision.Status != srmodel.StatusReceived && decision.Status != srmodel.StatusDeclined {
		return nil, fmt.Errorf("decision status must be terminal, got %q", decision.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transferRequests {
		tr := &s.transferRequests[i]
		if tr.ID != id {
			continue
		}

		if tr.Status != srmodel.StatusPending {
			return nil, ErrAlreadyProcessed
		}

		now := time.Now()
		tr.Status = decision.Status
		tr.Notes = decision.Notes
		tr.UpdatedAt = now
		if decision.Status == srmodel.StatusReceived {
			tr.ReceivedAt = &now
		} else {
			tr.DeclinedAt = &now
		}

		decided := *tr
		return &decided, nil
	}

	return nil, ErrNotFound
}

func statusIn(status srmodel.Status, statuses []srmodel.Status) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func sortByCreatedAtDesc(transferRequests []srmodel.TransferRequest) {
	sort.SliceStable(transferRequests, func(i, j int) bool {
		return transferRequests[i].CreatedAt.After(transferRequests[j].CreatedAt)
	})
}
