package database

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

// OpenDB initializes and returns the shared connection pool.
// The caller owns the pool and is responsible for closing it.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool sizing: the API is a single stateless process, so a small
	// fixed pool is plenty.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify the connection before serving traffic.
	if err := db.Ping(); err != nil {
		return nil, err
	}

	logrus.Info("Database connection pool established")
	return db, nil
}
