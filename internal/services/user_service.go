package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/mateusmlo/daily-diet-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(username, email, sessionToken string) (models.User, error)
	GetUserBySession(token string) (models.User, error)
}

// UserService provides business logic for registration and session lookup.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register inserts a new user. When sessionToken is empty a fresh 128-bit
// random token is issued; otherwise the inbound token is stored as-is, so a
// device that already holds a cookie keeps it across registrations.
// Username/email uniqueness is enforced by the store and surfaces as
// ErrConflict.
func (s *UserService) Register(username, email, sessionToken string) (models.User, error) {
	if sessionToken == "" {
		sessionToken = uuid.NewString()
	}

	user := models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		SessionID: sessionToken,
	}

	_, err := s.db.Exec(
		"INSERT INTO users(id, username, email, session_id) VALUES(?, ?, ?, ?)",
		user.ID, user.Username, user.Email, user.SessionID,
	)
	if err != nil {
		return models.User{}, translateErr(err)
	}
	return user, nil
}

// GetUserBySession resolves a session token to its user. A token can be
// shared by several users (registering with an existing cookie reuses it);
// the most recently registered match wins so resolution stays deterministic.
func (s *UserService) GetUserBySession(token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrNoSession
	}

	var user models.User
	row := s.db.QueryRow(
		"SELECT id, username, email, session_id FROM users WHERE session_id = ? ORDER BY rowid DESC LIMIT 1",
		token,
	)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.SessionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNoSession
		}
		return models.User{}, err
	}
	return user, nil
}
