package relocation

import (
	"context"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/coffeetrail/stockrelay/pkg/srdb/stor"
)

const defaultPollInterval = 30 * time.Second

// defaultVisibleLimit is how many pending transfers are shown before the
// "show more" affordance expands the list.
const defaultVisibleLimit = 3

type PendingFeedOptionFN func(*PendingFeed)

// PendingFeed holds the pending transfers addressed to one destination
// location. The store is polled rather than subscribed to, so a new
// transfer becomes visible within one poll interval; a failed refresh
// keeps the previous snapshot and records the error for the UI to surface
// with a retry action.
type PendingFeed struct {
	transferRequestStor stor.TransferRequestStor
	location            string
	pollInterval        time.Duration
	visibleLimit        int

	mu            sync.Mutex
	snapshot      []srmodel.TransferRequest
	lastErr       error
	lastRefreshed time.Time
}

func NewPendingFeed(transferRequestStor stor.TransferRequestStor, location string, optFNs ...PendingFeedOptionFN) *PendingFeed {
	f := &PendingFeed{
		transferRequestStor: transferRequestStor,
		location:            location,
		pollInterval:        defaultPollInterval,
		visibleLimit:        defaultVisibleLimit,
	}

	for _, optfn := range optFNs {
		optfn(f)
	}

	return f
}

func WithPollInterval(interval time.Duration) PendingFeedOptionFN {
	return func(f *PendingFeed) {
		f.pollInterval = interval
	}
}

func WithVisibleLimit(limit int) PendingFeedOptionFN {
	return func(f *PendingFeed) {
		f.visibleLimit = limit
	}
}

// Run polls the store until ctx is cancelled. Refresh failures are logged
// and retried on the next tick; the loop never stops on its own.
func (f *PendingFeed) Run(ctx context.Context) {
	for {
		if err := f.Refresh(); err != nil {
			log.Errorf("Refreshing pending transfers for %s failed: %s", f.location, err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(f.pollInterval):
		}
	}
}

// Refresh re-queries the store on demand. On failure the previous snapshot
// stays visible and LastErr reports the failure.
func (f *PendingFeed) Refresh() error {
	transfers, err := f.transferRequestStor.ListPendingForDestination(f.location)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.lastErr = err
		return err
	}

	f.snapshot = transfers
	f.lastErr = nil
	f.lastRefreshed = time.Now()

	return nil
}

// Pending returns the full current snapshot, most recent first.
func (f *PendingFeed) Pending() []srmodel.TransferRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	pending := make([]srmodel.TransferRequest, len(f.snapshot))
	copy(pending, f.snapshot)
	return pending
}

// Visible returns the snapshot truncated to the visible limit.
func (f *PendingFeed) Visible() []srmodel.TransferRequest {
	pending := f.Pending()
	if f.visibleLimit > 0 && len(pending) > f.visibleLimit {
		return pending[:f.visibleLimit]
	}
	return pending
}

func (f *PendingFeed) Location() string {
	return f.location
}

// LastErr returns the error from the most recent refresh, or nil if it
// succeeded.
func (f *PendingFeed) LastErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *PendingFeed) LastRefreshedAt() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastRefreshed
}
