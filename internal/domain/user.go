package domain

import "time"

// Identity represents the authenticated caller as resolved by the external
// identity provider. The core never stores credentials; it only consumes
// this shape.
type Identity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Admin  bool   `json:"admin"`
}

// AccessToken carries the validity window of the presented bearer token.
type AccessToken struct {
	Token     string    `json:"-"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
