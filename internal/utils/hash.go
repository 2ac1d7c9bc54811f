package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied to every password.
// Fixed so that hashing cost stays predictable across deployments.
const PasswordHashCost = 10

// HashPassword computes the bcrypt hash of a plaintext password.
// bcrypt embeds a fresh random salt into every hash, so hashing the same
// password twice yields different strings.
//
// Returns the encoded hash or an error if the password exceeds bcrypt's
// 72-byte limit.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash. Comparison runs in constant time with respect to the hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
