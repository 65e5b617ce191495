package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for stored password hashes
const BcryptCost = 12

// HashPassword returns a salted bcrypt hash of password
func HashPassword(password string) (string, error) {
	return hashWithCost(password, BcryptCost)
}

func hashWithCost(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches hashedPassword
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// PasswordHasher hashes and verifies passwords. Services depend on it so tests can lower the cost.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) bool
}

// BcryptHasher implements PasswordHasher with a fixed cost
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a hasher using BcryptCost
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{Cost: BcryptCost}
}

// Hash implements PasswordHasher
func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = BcryptCost
	}
	return hashWithCost(password, cost)
}

// Compare implements PasswordHasher
func (h BcryptHasher) Compare(hashedPassword, password string) bool {
	return CheckPassword(hashedPassword, password)
}
