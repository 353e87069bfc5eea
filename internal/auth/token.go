package auth

import (
	"crypto/subtle"

	"github.com/google/uuid"
)

// NewAuthenticationToken generates a user's authentication token. It is
// created once, at signup, and stays stable for the account's lifetime.
func NewAuthenticationToken() string {
	return uuid.NewString()
}

// TokenMatches compares a presented token against the stored one in
// constant time.
func TokenMatches(presented, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) == 1
}
