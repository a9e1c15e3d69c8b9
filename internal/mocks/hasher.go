package mocks

import "github.com/stretchr/testify/mock"

// Hasher is a mock implementation of model.Hasher.
type Hasher struct {
	mock.Mock
}

func (m *Hasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *Hasher) Verify(plaintext, digest string) (bool, error) {
	args := m.Called(plaintext, digest)
	return args.Bool(0), args.Error(1)
}
