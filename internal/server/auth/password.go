package auth

import (
	"crypto/rand"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is deliberately slow so brute-forcing stolen hashes is expensive.
const bcryptCost = 10

// sentinelHash is a valid digest of random bytes nobody knows. Login verifies
// against it when the username does not resolve, so the miss path costs the
// same bcrypt comparison as a wrong password.
var sentinelHash = mustSentinelHash()

func mustSentinelHash() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	h, err := bcrypt.GenerateFromPassword(b, bcryptCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

// HashPassword derives a salted one-way hash from the plaintext password.
// The salt is generated per call by bcrypt itself.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// SentinelHash returns a hash that matches no password, for timing-neutral
// comparisons when an account is absent.
func SentinelHash() string {
	return sentinelHash
}
