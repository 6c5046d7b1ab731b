package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v4/pgxpool"
)

// DB is a global variable to hold the database connection pool. It stays
// nil when the dataset is loaded from CSV instead of Postgres.
var DB *pgxpool.Pool

// InitDB sets up the database connection pool.
func InitDB(databaseURL string) {
	var err error
	DB, err = pgxpool.Connect(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	if err := DB.Ping(context.Background()); err != nil {
		log.Fatalf("Database ping failed: %v\n", err)
	}

	log.Println("Successfully connected to the database")
}

// CloseDB closes the database connection pool.
func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("Database connection pool closed")
	}
}

// GetDB returns the shared connection pool.
func GetDB() *pgxpool.Pool {
	return DB
}
