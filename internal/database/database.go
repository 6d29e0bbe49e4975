package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
// The count_meals columns are kept for compatibility with the original
// schema; summaries are always recomputed from the meals table.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		count_meals INTEGER DEFAULT 0,
		count_meals_in_diet INTEGER DEFAULT 0,
		session_id TEXT
	);

	CREATE TABLE IF NOT EXISTS meals (
		id TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		description TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		in_diet BOOLEAN NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_users_session_id ON users(session_id);
	CREATE INDEX IF NOT EXISTS idx_meals_user_id ON meals(user_id);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
