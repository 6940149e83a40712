package srmodel

import "fmt"

// Status is the canonical lifecycle state of a TransferRequest. It starts
// at pending and moves exactly once to received or declined.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReceived Status = "received"
	StatusDeclined Status = "declined"
)

// DisplayLabel returns the label the records browser shows for a status.
// The browser vocabulary calls received transfers "completed" and declined
// transfers "cancelled"; the canonical states never change.
func (s Status) DisplayLabel() string {
	switch s {
	case StatusReceived:
		return "completed"
	case StatusDeclined:
		return "cancelled"
	default:
		return string(s)
	}
}

// ParseBrowserStatus maps a browser status filter (all, pending, completed,
// cancelled) onto the canonical states it selects. An empty list means no
// status filtering.
func ParseBrowserStatus(filter string) ([]Status, error) {
	switch filter {
	case "", "all":
		return nil, nil
	case "pending":
		return []Status{StatusPending}, nil
	case "completed":
		return []Status{StatusReceived}, nil
	case "cancelled":
		return []Status{StatusDeclined}, nil
	default:
		return nil, fmt.Errorf("unknown status filter %q", filter)
	}
}

// DefaultAcceptNote is the acknowledgement text recorded when a manager
// accepts a transfer without writing their own note.
func DefaultAcceptNote(destinationLocation string) string {
	return fmt.Sprintf("Accepted by %s manager", destinationLocation)
}
