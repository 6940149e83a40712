package tutil

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func IsIntegrationTest() bool {
	testType := os.Getenv("SR_TEST")
	return strings.ToLower(testType) == "integration"
}

// NewTestDB opens a private in-memory sqlite database with the
// transfer_requests table migrated. Each test gets its own database.
func NewTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoErrorf(t, err, "Failed to open test db: %s", err)

	err = db.AutoMigrate(&srmodel.TransferRequest{})
	require.NoErrorf(t, err, "Failed to migrate test db: %s", err)

	return db
}
