package relocation

import (
	"sort"
	"strings"
	"time"

	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/coffeetrail/stockrelay/pkg/srdb/stor"
)

// BrowserQuery selects and orders historical relocation records. Status
// uses the browser vocabulary (all, pending, completed, cancelled); it is
// translated to canonical states at this boundary.
type BrowserQuery struct {
	Status        string `json:"status"`
	TimeRange     string `json:"time_range"`
	SearchTerm    string `json:"search_term"`
	SortField     string `json:"sort_field"`
	SortDirection string `json:"sort_direction"`
}

// RecordsBrowser is the read-only view over historical transfer requests.
type RecordsBrowser struct {
	transferRequestStor stor.TransferRequestStor
	now                 func() time.Time
}

func NewRecordsBrowser(transferRequestStor stor.TransferRequestStor) *RecordsBrowser {
	return &RecordsBrowser{
		transferRequestStor: transferRequestStor,
		now:                 time.Now,
	}
}

// Records returns the matching, sorted records. The result is a fresh
// slice suitable for display or export.
func (b *RecordsBrowser) Records(query BrowserQuery) ([]srmodel.TransferRequest, error) {
	statuses, err := srmodel.ParseBrowserStatus(query.Status)
	if err != nil {
		return nil, validationError("status", "%s", err)
	}

	cutoff, err := timeRangeCutoff(query.TimeRange, b.now())
	if err != nil {
		return nil, err
	}

	records, err := b.transferRequestStor.ListTransferRequests(stor.ListFilter{
		Statuses:     statuses,
		CreatedAfter: cutoff,
	})
	if err != nil {
		return nil, err
	}

	if term := strings.TrimSpace(query.SearchTerm); term != "" {
		records = searchRecords(records, term)
	}

	if err := sortRecords(records, query.SortField, query.SortDirection); err != nil {
		return nil, err
	}

	return records, nil
}

func timeRangeCutoff(timeRange string, now time.Time) (time.Time, error) {
	switch timeRange {
	case "", "all":
		return time.Time{}, nil
	case "hour":
		return now.Add(-time.Hour), nil
	case "day":
		return now.AddDate(0, 0, -1), nil
	case "week":
		return now.AddDate(0, 0, -7), nil
	case "month":
		return now.AddDate(0, -1, 0), nil
	case "year":
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, validationError("time_range", "unknown time range %q", timeRange)
	}
}

func searchRecords(records []srmodel.TransferRequest, term string) []srmodel.TransferRequest {
	term = strings.ToLower(term)

	var matching []srmodel.TransferRequest
	for _, r := range records {
		haystack := strings.ToLower(strings.Join([]string{
			r.Manager,
			r.SourceLocation,
			r.DestinationLocation,
			r.CoffeeType,
			r.QualityGrade,
			r.Reason,
			r.Notes,
		}, "\n"))
		if strings.Contains(haystack, term) {
			matching = append(matching, r)
		}
	}
	return matching
}

func sortRecords(records []srmodel.TransferRequest, field, direction string) error {
	var less func(a, b *srmodel.TransferRequest) bool

	switch field {
	case "", "created_at":
		less = func(a, b *srmodel.TransferRequest) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "quantity":
		less = func(a, b *srmodel.TransferRequest) bool { return a.Quantity.LessThan(b.Quantity) }
	case "manager":
		less = func(a, b *srmodel.TransferRequest) bool { return a.Manager < b.Manager }
	case "source_location":
		less = func(a, b *srmodel.TransferRequest) bool { return a.SourceLocation < b.SourceLocation }
	case "destination_location":
		less = func(a, b *srmodel.TransferRequest) bool { return a.DestinationLocation < b.DestinationLocation }
	case "status":
		less = func(a, b *srmodel.TransferRequest) bool { return a.Status < b.Status }
	default:
		return validationError("sort_field", "unknown sort field %q", field)
	}

	descending := false
	switch direction {
	case "", "desc":
		descending = true
	case "asc":
	default:
		return validationError("sort_direction", "must be asc or desc")
	}

	sort.SliceStable(records, func(i, j int) bool {
		if descending {
			return less(&records[j], &records[i])
		}
		return less(&records[i], &records[j])
	})

	return nil
}
