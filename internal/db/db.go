package db

import (
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// Connect opens a connection pool to the sqlite database at path.
func Connect(path string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if _, err := pool.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return pool, nil
}

// InitSchema creates the tables if they don't exist.
func InitSchema(pool *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT,
		stripe_customer_id TEXT,
		email_verified INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS offers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price TEXT NOT NULL,
		response_time_hours INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		buyer_id INTEGER NOT NULL REFERENCES users(id),
		seller_id INTEGER NOT NULL REFERENCES users(id),
		offer_id INTEGER NOT NULL REFERENCES offers(id),
		amount TEXT NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('pending', 'completed', 'refunded')),
		created_at TIMESTAMP NOT NULL
	);`

	if _, err := pool.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
