package models

// User represents a registered account. The session token is the sole
// credential and is never serialized into responses.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	SessionID string `json:"-"`
}
