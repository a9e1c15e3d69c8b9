package model

// Hasher one-way transforms a plaintext credential into a storable digest
// and checks a plaintext against a stored digest.
type Hasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns true iff plaintext matches digest. A mismatch is not
	// an error; errors indicate a malformed digest.
	Verify(plaintext, digest string) (bool, error)
}
