// Package service declares the ports the use cases call out through:
// credentials, session tokens, revocation, the payment processor and events.
package service

// PasswordHasher hashes and verifies login passwords.
// Implementations may only consider the first 72 bytes, which is why signup caps passwords there.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
