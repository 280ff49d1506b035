package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMailer is a mock type for the Mailer interface.
type MockMailer struct {
	mock.Mock
}

func NewMockMailer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMailer {
	m := &MockMailer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMailer) EXPECT() *MockMailer_Expecter {
	return &MockMailer_Expecter{mock: &m.Mock}
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	ret := m.Called(ctx, to, resetURL)

	return ret.Error(0)
}

type MockMailer_Expecter struct {
	mock *mock.Mock
}

func (e *MockMailer_Expecter) SendPasswordReset(ctx, to, resetURL any) *mock.Call {
	return e.mock.On("SendPasswordReset", ctx, to, resetURL)
}
