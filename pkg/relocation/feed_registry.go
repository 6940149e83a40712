package relocation

import (
	"context"
	"sync"

	"github.com/coffeetrail/stockrelay/pkg/srdb/stor"
)

// FeedRegistry hands out one PendingFeed per destination location, so
// every session watching a location shares the same snapshot.
type FeedRegistry struct {
	transferRequestStor stor.TransferRequestStor
	optFNs              []PendingFeedOptionFN

	mu      sync.Mutex
	feeds   map[string]*PendingFeed
	pollCtx context.Context
}

func NewFeedRegistry(transferRequestStor stor.TransferRequestStor, optFNs ...PendingFeedOptionFN) *FeedRegistry {
	return &FeedRegistry{
		transferRequestStor: transferRequestStor,
		optFNs:              optFNs,
		feeds:               make(map[string]*PendingFeed),
	}
}

// StartPolling begins the fixed-interval poll loop for every feed the
// registry holds, and for any feed it creates later. Cancelling ctx stops
// the loops.
func (r *FeedRegistry) StartPolling(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pollCtx != nil {
		return
	}
	r.pollCtx = ctx

	for _, feed := range r.feeds {
		go feed.Run(ctx)
	}
}

// FeedFor returns the feed for location, creating it on first use.
func (r *FeedRegistry) FeedFor(location string) *PendingFeed {
	r.mu.Lock()
	defer r.mu.Unlock()

	feed, ok := r.feeds[location]
	if !ok {
		feed = NewPendingFeed(r.transferRequestStor, location, r.optFNs...)
		r.feeds[location] = feed
		if r.pollCtx != nil {
			go feed.Run(r.pollCtx)
		}
	}
	return feed
}

// RefreshAll refreshes every known feed. Used after a decision so the
// decided transfer disappears from its destination's feed without waiting
// for the next poll.
func (r *FeedRegistry) RefreshAll() {
	r.mu.Lock()
	feeds := make([]*PendingFeed, 0, len(r.feeds))
	for _, feed := range r.feeds {
		feeds = append(feeds, feed)
	}
	r.mu.Unlock()

	for _, feed := range feeds {
		// Errors stay on the feed's LastErr; the stale snapshot remains.
		_ = feed.Refresh()
	}
}
