// internal/ports/crypto/hasher.crypto.go
package crypto

import "context"

// PasswordHasher is the credential-mechanics collaborator. The engine
// only decides WHEN a password changes; the algorithm lives behind this
// port.
type PasswordHasher interface {
	HashPassword(ctx context.Context, password string) (string, error)
	VerifyPassword(ctx context.Context, password, encodedHash string) (bool, error)
}
