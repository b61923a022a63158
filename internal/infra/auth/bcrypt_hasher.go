// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"

	"campus/config"
	"campus/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	decoyHash []byte // Hash of random bytes, compared against when no stored hash exists.
}

// NewBcryptHasher is the constructor for bcryptHasher.
// The cost comes from auth.bcryptCost and defaults to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d is outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, errors.Wrap(err, "failed to generate decoy secret")
	}
	decoy, err := bcrypt.GenerateFromPassword(secret, cost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate decoy hash")
	}

	return &bcryptHasher{
		cost:      cost,
		decoyHash: decoy,
	}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
// Any comparison error, including a corrupted hash, is a mismatch.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckDecoy runs a comparison that always fails, at the configured cost.
func (h *bcryptHasher) CheckDecoy(password string) {
	_ = bcrypt.CompareHashAndPassword(h.decoyHash, []byte(password))
}
