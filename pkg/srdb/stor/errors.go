package stor

import "errors"

var (
	// ErrNotFound means no transfer request exists with the given id.
	ErrNotFound = errors.New("no such transfer request")

	// ErrAlreadyProcessed means a decision was attempted on a request that
	// already reached a terminal state.
	ErrAlreadyProcessed = errors.New("transfer request already processed")
)
