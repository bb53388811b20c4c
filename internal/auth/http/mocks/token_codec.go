// Package mocks provides mock implementations for testing HTTP handlers and gates.
package mocks

import (
	"github.com/stretchr/testify/mock"

	authDomain "github.com/atluixx/lynkt/internal/auth/domain"
)

// MockTokenCodec is a mock implementation of service.TokenCodec for testing.
type MockTokenCodec struct {
	mock.Mock
}

// Issue mocks the Issue method of TokenCodec.
func (m *MockTokenCodec) Issue(subject string) (*authDomain.IssuedToken, error) {
	args := m.Called(subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IssuedToken), args.Error(1)
}

// Verify mocks the Verify method of TokenCodec.
func (m *MockTokenCodec) Verify(token string) authDomain.VerificationOutcome {
	args := m.Called(token)
	return args.Get(0).(authDomain.VerificationOutcome)
}
