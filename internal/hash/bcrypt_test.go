package hash

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests use MinCost to keep the suite fast; the work factor does not change
// the verify contract.

func TestBcrypt_Roundtrip(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	for _, plaintext := range []string{"s3cret!", "", "correct horse battery staple"} {
		digest, err := h.Hash(plaintext)
		require.NoError(t, err)
		require.NotEmpty(t, digest)

		ok, err := h.Verify(plaintext, digest)
		require.NoError(t, err)
		assert.True(t, ok, "plaintext %q should verify against its own digest", plaintext)
	}
}

func TestBcrypt_Mismatch(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	digest, err := h.Hash("right")
	require.NoError(t, err)

	ok, err := h.Verify("wrong", digest)
	require.NoError(t, err)
	assert.False(t, ok)

	// Case differences must not match.
	ok, err = h.Verify("Right", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcrypt_DistinctInputsDistinctDigests(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	d1, err := h.Hash("alpha")
	require.NoError(t, err)
	d2, err := h.Hash("beta")
	require.NoError(t, err)
	assert.NotEqual(t, d1, d2)
}

func TestBcrypt_MalformedDigest(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = h.Verify("anything", "not-a-bcrypt-digest")
	assert.Error(t, err)
}

func TestNewBcrypt_CostBounds(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost - 1)
	assert.Error(t, err)

	_, err = NewBcrypt(bcrypt.MaxCost + 1)
	assert.Error(t, err)

	_, err = NewBcrypt(DefaultCost)
	assert.NoError(t, err)
}
