package session

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// tokenKey is the fixed name the bearer token is stored under. The client
// holds at most one token; every successful exchange replaces it.
const tokenKey = "procore_access_token"

// Store provides SQLite-backed persistence for the session credential.
type Store struct {
	db *sql.DB
}

// NewStore opens the SQLite database at dbPath and creates tables if they
// don't exist.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS credentials (
		name TEXT PRIMARY KEY,
		token TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(schema)
	return err
}

// SaveToken stores the bearer token, replacing any previous one.
func (s *Store) SaveToken(token string) error {
	_, err := s.db.Exec(
		`INSERT INTO credentials (name, token, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`,
		tokenKey, token, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// LoadToken returns the stored bearer token, or "" when none has been
// saved yet.
func (s *Store) LoadToken() (string, error) {
	row := s.db.QueryRow(`SELECT token FROM credentials WHERE name = ?`, tokenKey)

	var token string
	err := row.Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("scan token: %w", err)
	}

	return token, nil
}

// TokenUpdatedAt returns when the current token was stored. The zero time
// is returned when no token exists.
func (s *Store) TokenUpdatedAt() (time.Time, error) {
	row := s.db.QueryRow(`SELECT updated_at FROM credentials WHERE name = ?`, tokenKey)

	var at time.Time
	err := row.Scan(&at)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("scan updated_at: %w", err)
	}

	return at, nil
}
