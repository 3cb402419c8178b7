package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
// Uniqueness of usernames, tag titles, share hashes and the one-link-per-user
// rule are enforced here, so a concurrent check-then-insert race cannot
// produce duplicate rows.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS contents (
		id TEXT NOT NULL PRIMARY KEY,
		link TEXT NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		user_id TEXT NOT NULL REFERENCES users(id),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS tags (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS content_tags (
		content_id TEXT NOT NULL REFERENCES contents(id) ON DELETE CASCADE,
		tag_id TEXT NOT NULL REFERENCES tags(id),
		PRIMARY KEY (content_id, tag_id)
	);

	CREATE TABLE IF NOT EXISTS share_links (
		id TEXT NOT NULL PRIMARY KEY,
		hash TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL UNIQUE REFERENCES users(id)
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
