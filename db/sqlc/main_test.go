package db

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var testStore Store

func TestMain(m *testing.M) {
	testDBSource := os.Getenv("TEST_DB_SOURCE")
	if testDBSource == "" {
		// Default to the unix socket so an empty host is not resolved as
		// TCP/localhost by the driver.
		testDBSource = "postgresql:///sololife_test?sslmode=disable&host=/var/run/postgresql"
	}

	connPool, err := pgxpool.New(context.Background(), testDBSource)
	if err != nil {
		log.Fatal("cannot connect to test db:", err)
	}

	testStore = NewStore(connPool)
	os.Exit(m.Run())
}
