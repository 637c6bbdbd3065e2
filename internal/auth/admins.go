// Package auth provides admin credentials, sessions, and the admin route gate.
package auth

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// AdminStore manages admin credentials in SQLite.
type AdminStore struct {
	db *sql.DB
}

// NewAdminStore creates an admin credential store.
func NewAdminStore(db *sql.DB) *AdminStore {
	return &AdminStore{db: db}
}

// Upsert creates an admin or rotates an existing admin's password.
func (s *AdminStore) Upsert(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if _, err := s.db.Exec(
		`INSERT INTO admins (username, password_hash) VALUES (?, ?)
		 ON CONFLICT(username) DO UPDATE SET password_hash = excluded.password_hash`,
		username, string(hash),
	); err != nil {
		return fmt.Errorf("storing admin: %w", err)
	}

	return nil
}

// Authenticate checks a username/password pair against the stored hash.
// Unknown usernames and wrong passwords both report false.
func (s *AdminStore) Authenticate(username, password string) (bool, error) {
	var hash string
	err := s.db.QueryRow(
		"SELECT password_hash FROM admins WHERE username = ?", username,
	).Scan(&hash)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying admin: %w", err)
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}
