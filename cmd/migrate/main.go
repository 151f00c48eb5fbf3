package main

import (
	"github.com/sirupsen/logrus"
	"github.com/stepkart/stepkart-golang/internal/config"
	"github.com/stepkart/stepkart-golang/internal/database"
)

// Applies the schema against the configured database. Safe to re-run.
func main() {
	cfg := config.LoadConfig()

	db, err := database.OpenDB(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
}
