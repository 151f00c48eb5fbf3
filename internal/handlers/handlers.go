package handlers

import (
	"database/sql"

	"github.com/stepkart/stepkart-golang/internal/config"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB  *sql.DB        // Shared connection pool
	Cfg *config.Config // Loaded once in main
}
