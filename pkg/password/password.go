// Package password hides the hashing algorithm behind a small interface so
// callers only ever see opaque hash strings.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes plain text passwords and verifies them against stored hashes.
type Hasher interface {
	// Hash derives a storable hash from the plain text password.
	Hash(plain string) (string, error)
	// Verify reports whether plain matches the stored hash.
	Verify(hash, plain string) bool
}

// Bcrypt implements Hasher using bcrypt.
type Bcrypt struct {
	// Cost is the bcrypt work factor. Zero means bcrypt.DefaultCost.
	Cost int
}

func (b Bcrypt) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

func (b Bcrypt) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
