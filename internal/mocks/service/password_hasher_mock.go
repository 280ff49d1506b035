// Package mocks provides testify mocks for the domain service interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock type for the PasswordHasher interface.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &m.Mock}
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	ret := m.Called(password, hash)

	return ret.Bool(0)
}

type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (e *MockPasswordHasher_Expecter) Hash(password any) *mock.Call {
	return e.mock.On("Hash", password)
}

func (e *MockPasswordHasher_Expecter) Check(password, hash any) *mock.Call {
	return e.mock.On("Check", password, hash)
}
