package db

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

const driverName = "sqlite"

// Connect opens the SQLite database at dbPath with foreign keys enforced on
// every pooled connection.
func Connect(dbPath string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	sqlx.BindDriver(driverName, sqlx.QUESTION)
	pool, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := pool.Ping(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	slog.Info("Connected to database", "path", dbPath)
	return pool, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		login TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS breeds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);`,
	`CREATE TABLE IF NOT EXISTS cats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		breed_id INTEGER NOT NULL REFERENCES breeds(id),
		birth_date TEXT NOT NULL,
		gender TEXT,
		owner_phone TEXT CHECK (owner_phone IS NULL OR length(owner_phone) = 10),
		user_id INTEGER NOT NULL REFERENCES users(id),
		city TEXT NOT NULL,
		comments TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE INDEX IF NOT EXISTS idx_cats_user_id ON cats(user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_cats_breed_id ON cats(breed_id);`,
	`CREATE TABLE IF NOT EXISTS photos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cat_id INTEGER NOT NULL REFERENCES cats(id),
		photo_name TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_photos_cat_id ON photos(cat_id);`,
	`CREATE TABLE IF NOT EXISTS likes (
		main_cat_id INTEGER NOT NULL REFERENCES cats(id),
		liked_cat_id INTEGER NOT NULL REFERENCES cats(id),
		UNIQUE (main_cat_id, liked_cat_id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_likes_liked_cat_id ON likes(liked_cat_id);`,
}

// InitializeDB creates the schema if it doesn't exist and seeds the breed
// lookup table. It is safe to call on every start.
func InitializeDB(ctx context.Context, db *sqlx.DB, breeds []string) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	for _, name := range breeds {
		if _, err := db.ExecContext(ctx, `INSERT INTO breeds (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name); err != nil {
			return fmt.Errorf("failed to seed breed %q: %w", name, err)
		}
	}

	slog.InfoContext(ctx, "DB schema verified.", "breeds", len(breeds))

	return nil
}
