// Package hash implements credential hashing backed by bcrypt.
//
// Digests are salted per call and verified in constant time, so two hashes
// of the same plaintext differ while Verify still matches either of them.
package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

// DefaultCost keeps hashing around a few hundred milliseconds on current
// server hardware, above the OWASP minimum of 10.
const DefaultCost = 12

var _ model.Hasher = (*Bcrypt)(nil)

// Bcrypt hashes credentials with the bcrypt KDF. Safe for concurrent use.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given work factor. Costs outside
// bcrypt's supported range are rejected.
func NewBcrypt(cost int) (*Bcrypt, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Bcrypt{cost: cost}, nil
}

// Hash returns the bcrypt digest of plaintext. The empty string is valid
// input. Note bcrypt ignores input past 72 bytes; the request validators cap
// passwords well below that.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. The comparison is
// case-sensitive and constant-time.
func (b *Bcrypt) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to verify credential: %w", err)
	}
	return true, nil
}
