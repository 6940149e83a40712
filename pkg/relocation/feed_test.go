package relocation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coffeetrail/stockrelay/pkg/relocation"
	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/coffeetrail/stockrelay/pkg/srdb/stor"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPendingFeed_RefreshAndIsolation(t *testing.T) {
	s := stor.NewInMemoryTransferRequestStor(nil)
	mbarara := relocation.NewPendingFeed(s, "Mbarara")
	kampala := relocation.NewPendingFeed(s, "Kampala")

	created := newPendingTransfer(t, s)

	require.NoError(t, mbarara.Refresh())
	require.NoError(t, kampala.Refresh())

	pending := mbarara.Pending()
	require.Len(t, pending, 1)
	require.Equal(t, created.ID, pending[0].ID)

	// A transfer addressed to Mbarara never shows up in Kampala's feed.
	require.Len(t, kampala.Pending(), 0)

	// Reads without an intervening mutation return the identical set.
	require.Equal(t, pending, mbarara.Pending())
}

// A transfer submitted while the feed is polling becomes visible within
// the poll interval, without an explicit refresh.
func TestPendingFeed_EventualVisibility(t *testing.T) {
	s := stor.NewInMemoryTransferRequestStor(nil)
	feed := relocation.NewPendingFeed(s, "Mbarara",
		relocation.WithPollInterval(20*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Run(ctx)

	created := newPendingTransfer(t, s)

	require.Eventually(t, func() bool {
		pending := feed.Pending()
		return len(pending) == 1 && pending[0].ID == created.ID
	}, time.Second, 5*time.Millisecond, "transfer never became visible")
}

func TestPendingFeed_FailedRefreshKeepsSnapshot(t *testing.T) {
	s := stor.NewInMemoryTransferRequestStor(nil)
	feed := relocation.NewPendingFeed(s, "Mbarara")

	created := newPendingTransfer(t, s)
	require.NoError(t, feed.Refresh())
	require.Len(t, feed.Pending(), 1)

	s.ErrToReturn = errors.New("db unreachable")
	require.Error(t, feed.Refresh())

	// The previous snapshot stays visible and the error is surfaced.
	pending := feed.Pending()
	require.Len(t, pending, 1)
	require.Equal(t, created.ID, pending[0].ID)
	require.Error(t, feed.LastErr())

	s.ErrToReturn = nil
	require.NoError(t, feed.Refresh())
	require.NoError(t, feed.LastErr())
}

func TestPendingFeed_VisibleLimit(t *testing.T) {
	s := stor.NewInMemoryTransferRequestStor(nil)
	feed := relocation.NewPendingFeed(s, "Mbarara", relocation.WithVisibleLimit(3))

	for i := 0; i < 5; i++ {
		newPendingTransfer(t, s)
	}

	require.NoError(t, feed.Refresh())
	require.Len(t, feed.Visible(), 3)
	require.Len(t, feed.Pending(), 5)
}

func TestFeedRegistry(t *testing.T) {
	s := stor.NewInMemoryTransferRequestStor(nil)
	registry := relocation.NewFeedRegistry(s)

	feed := registry.FeedFor("Mbarara")
	require.Same(t, feed, registry.FeedFor("Mbarara"))
	require.NotSame(t, feed, registry.FeedFor("Kampala"))

	newPendingTransfer(t, s)
	registry.RefreshAll()
	require.Len(t, feed.Pending(), 1)
}

// Once polling starts, every feed the registry holds refreshes on the
// fixed interval with no request-driven refresh, including feeds created
// after the loops were started. Cancelling the context stops them.
func TestFeedRegistry_StartPolling(t *testing.T) {
	s := stor.NewInMemoryTransferRequestStor(nil)
	registry := relocation.NewFeedRegistry(s,
		relocation.WithPollInterval(20*time.Millisecond))

	mbarara := registry.FeedFor("Mbarara")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	registry.StartPolling(ctx)

	kampala := registry.FeedFor("Kampala")

	newPendingTransfer(t, s)
	_, err := s.CreateTransferRequest(&srmodel.TransferRequest{
		Manager:             "Brenda",
		SourceLocation:      "Gulu",
		DestinationLocation: "Kampala",
		CoffeeType:          "robusta",
		QualityGrade:        "Screen 18",
		Quantity:            decimal.NewFromInt(200),
		Unit:                srmodel.UnitBags,
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(mbarara.Pending()) == 1 && len(kampala.Pending()) == 1
	}, time.Second, 5*time.Millisecond, "polling never surfaced the transfers")

	cancel()
	time.Sleep(60 * time.Millisecond)

	// A transfer submitted after the loops stopped stays invisible.
	newPendingTransfer(t, s)
	time.Sleep(100 * time.Millisecond)
	require.Len(t, mbarara.Pending(), 1)
}
