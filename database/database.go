package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is a global variable to hold the database connection pool.
var DB *pgxpool.Pool

// InitDB sets up the database connection pool and bootstraps the
// schema.
func InitDB(databaseURL string) {
	var err error
	DB, err = pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	err = DB.Ping(context.Background())
	if err != nil {
		log.Fatalf("Database ping failed: %v\n", err)
	}

	if err = initSchema(context.Background()); err != nil {
		log.Fatalf("Schema bootstrap failed: %v\n", err)
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

// GetDB returns the database connection pool.
func GetDB() *pgxpool.Pool {
	return DB
}

func initSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'restaurant',
			phone TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS restaurants (
			user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			doc JSONB NOT NULL
		);

		CREATE TABLE IF NOT EXISTS order_ledgers (
			user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			doc JSONB NOT NULL
		);

		CREATE TABLE IF NOT EXISTS prediction_ledgers (
			user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			doc JSONB NOT NULL
		);

		CREATE TABLE IF NOT EXISTS charities (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			location TEXT NOT NULL,
			location_url TEXT NOT NULL
		);
	`
	_, err := DB.Exec(ctx, schema)
	return err
}
