package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB is the global database connection
var DB *sql.DB

// InitDatabaseConnection opens the sqlite database file, enables foreign
// keys and full synchronous commits, and limits the pool to a single
// connection so writes are serialized.
func InitDatabaseConnection(path string) error {
	var err error
	DB, err = sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(ON)&_pragma=synchronous(FULL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}

	// sqlite allows one writer at a time; a single pooled connection keeps
	// overlapping requests from racing on the write path.
	DB.SetMaxOpenConns(1)

	if err := DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	return nil
}

// CloseConnection closes the database connection
func CloseConnection() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
