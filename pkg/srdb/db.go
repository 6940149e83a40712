package srdb

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func MakeDSNFromEnv() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USERNAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_DATABASE"))
}

const maxDBRetries = 5

// MustConnectToDB will attempt to connect to the database maxDBRetries times.
// If it isn't successful after that number of retries then it will call
// log.Fatalf(), which will cause the server to exit. Between retry attempts
// it will sleep for 3 seconds. Single-node deployments can set
// DB_ADAPTER=sqlite and DB_PATH to run against a local sqlite file.
func MustConnectToDB() *gorm.DB {
	var (
		err error
		db  *gorm.DB
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	retryCount := 1
	for {
		db, err = gorm.Open(makeDialector(), gormConfig)
		switch {
		case err == nil:
			return db
		case retryCount >= maxDBRetries:
			log.Fatalf("Failed to open db: %s", err)
		default:
			retryCount++
			time.Sleep(3 * time.Second)
		}
	}
}

func makeDialector() gorm.Dialector {
	if os.Getenv("DB_ADAPTER") == "sqlite" {
		return sqlite.Open(os.Getenv("DB_PATH"))
	}

	return mysql.Open(MakeDSNFromEnv())
}
