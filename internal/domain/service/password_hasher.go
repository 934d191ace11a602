// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

// PasswordHasher defines the interface for password hashing operations.
type PasswordHasher interface {
	// HashPassword generates a hash from a plain-text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain-text password with a hash.
	VerifyPassword(hashedPassword, password string) error
}
