package repository

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// HashPassword returns the hex-encoded one-way digest stored in place of
// the plaintext password.
func HashPassword(password string) string {
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPasswordHash compares a password with a stored digest
func CheckPasswordHash(password, hash string) bool {
	return HashPassword(password) == hash
}
