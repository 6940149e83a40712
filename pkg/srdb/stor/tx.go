package stor

import (
	"errors"
	"os"
	"strconv"

	"gorm.io/gorm"
)

var txRetry int

func txRetryCount() int {
	if txRetry != 0 {
		return txRetry
	}

	count64, err := strconv.ParseInt(os.Getenv("SR_TX_RETRY"), 10, 32)
	if err != nil || count64 < 3 {
		count64 = 3
	}

	txRetry = int(count64)

	return txRetry
}

// WithTxRetry runs fn in a transaction, retrying transient failures.
// Precondition failures (ErrNotFound, ErrAlreadyProcessed) are never
// retried since re-running the transaction cannot change the outcome.
func WithTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error

	retryCount := txRetryCount()

	for i := 0; i < retryCount; i++ {
		err = db.Transaction(fn)
		if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrAlreadyProcessed) {
			break
		}
	}

	return err
}
