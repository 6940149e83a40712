package relocation_test

import (
	"testing"
	"time"

	"github.com/coffeetrail/stockrelay/pkg/relocation"
	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/coffeetrail/stockrelay/pkg/srdb/stor"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func seededBrowser() *relocation.RecordsBrowser {
	now := time.Now()
	receivedAt := now.Add(-time.Hour)
	declinedAt := now.AddDate(0, 0, -3)

	return relocation.NewRecordsBrowser(stor.NewInMemoryTransferRequestStor([]srmodel.TransferRequest{
		{
			ID: 1, Manager: "Alice", SourceLocation: "Kampala", DestinationLocation: "Mbarara",
			CoffeeType: "arabica", QualityGrade: "Bugisu AA", Quantity: decimal.NewFromInt(50),
			Unit: srmodel.UnitKg, Status: srmodel.StatusReceived, Notes: "Accepted by Mbarara manager",
			CreatedAt: now.Add(-2 * time.Hour), ReceivedAt: &receivedAt,
		},
		{
			ID: 2, Manager: "Brenda", SourceLocation: "Gulu", DestinationLocation: "Kampala",
			CoffeeType: "robusta", QualityGrade: "Screen 18", Quantity: decimal.NewFromInt(200),
			Unit: srmodel.UnitBags, Status: srmodel.StatusDeclined, Notes: "bad batch",
			CreatedAt: now.AddDate(0, 0, -3), DeclinedAt: &declinedAt,
		},
		{
			ID: 3, Manager: "Charles", SourceLocation: "Mbarara", DestinationLocation: "Gulu",
			CoffeeType: "arabica", QualityGrade: "Drugar", Quantity: decimal.NewFromInt(5),
			Unit: srmodel.UnitTons, Status: srmodel.StatusPending,
			CreatedAt: now.AddDate(0, 0, -20),
		},
	}))
}

func TestRecordsBrowser_StatusFilter(t *testing.T) {
	browser := seededBrowser()

	var tests = []struct {
		status      string
		expectedIDs []int
	}{
		{status: "all", expectedIDs: []int{1, 2, 3}},
		{status: "pending", expectedIDs: []int{3}},
		{status: "completed", expectedIDs: []int{1}},
		{status: "cancelled", expectedIDs: []int{2}},
	}

	for _, test := range tests {
		t.Run(test.status, func(t *testing.T) {
			records, err := browser.Records(relocation.BrowserQuery{Status: test.status})
			require.NoError(t, err)
			require.ElementsMatch(t, test.expectedIDs, recordIDs(records))
		})
	}

	_, err := browser.Records(relocation.BrowserQuery{Status: "received"})
	require.True(t, relocation.IsValidationError(err))
}

func TestRecordsBrowser_TimeRange(t *testing.T) {
	browser := seededBrowser()

	var tests = []struct {
		timeRange   string
		expectedIDs []int
	}{
		{timeRange: "all", expectedIDs: []int{1, 2, 3}},
		{timeRange: "day", expectedIDs: []int{1}},
		{timeRange: "week", expectedIDs: []int{1, 2}},
		{timeRange: "month", expectedIDs: []int{1, 2, 3}},
	}

	for _, test := range tests {
		t.Run(test.timeRange, func(t *testing.T) {
			records, err := browser.Records(relocation.BrowserQuery{TimeRange: test.timeRange})
			require.NoError(t, err)
			require.ElementsMatch(t, test.expectedIDs, recordIDs(records))
		})
	}

	_, err := browser.Records(relocation.BrowserQuery{TimeRange: "decade"})
	require.True(t, relocation.IsValidationError(err))
}

func TestRecordsBrowser_Search(t *testing.T) {
	browser := seededBrowser()

	records, err := browser.Records(relocation.BrowserQuery{SearchTerm: "bad batch"})
	require.NoError(t, err)
	require.Equal(t, []int{2}, recordIDs(records))

	records, err = browser.Records(relocation.BrowserQuery{SearchTerm: "ARABICA"})
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 3}, recordIDs(records))

	records, err = browser.Records(relocation.BrowserQuery{SearchTerm: "nonexistent"})
	require.NoError(t, err)
	require.Len(t, records, 0)
}

func TestRecordsBrowser_Sort(t *testing.T) {
	browser := seededBrowser()

	// Default ordering is created_at descending.
	records, err := browser.Records(relocation.BrowserQuery{})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, recordIDs(records))

	records, err = browser.Records(relocation.BrowserQuery{SortField: "quantity", SortDirection: "asc"})
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2}, recordIDs(records))

	records, err = browser.Records(relocation.BrowserQuery{SortField: "manager", SortDirection: "desc"})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 1}, recordIDs(records))

	_, err = browser.Records(relocation.BrowserQuery{SortField: "color"})
	require.True(t, relocation.IsValidationError(err))
}

func recordIDs(records []srmodel.TransferRequest) []int {
	ids := make([]int, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}
