package mocks

import (
	"time"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the TokenService interface.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &m.Mock}
}

func (m *MockTokenService) GenerateSessionToken(accountID uuid.UUID, role entity.Role) (string, error) {
	ret := m.Called(accountID, role)

	return ret.String(0), ret.Error(1)
}

func (m *MockTokenService) GenerateResetToken(accountID uuid.UUID, role entity.Role) (string, time.Time, error) {
	ret := m.Called(accountID, role)

	return ret.String(0), ret.Get(1).(time.Time), ret.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := m.Called(tokenString)

	var r0 *service.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}

	return r0, ret.Error(1)
}

func (m *MockTokenService) SessionTokenDuration() time.Duration {
	ret := m.Called()

	return ret.Get(0).(time.Duration)
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (e *MockTokenService_Expecter) GenerateSessionToken(accountID, role any) *mock.Call {
	return e.mock.On("GenerateSessionToken", accountID, role)
}

func (e *MockTokenService_Expecter) GenerateResetToken(accountID, role any) *mock.Call {
	return e.mock.On("GenerateResetToken", accountID, role)
}

func (e *MockTokenService_Expecter) ValidateToken(tokenString any) *mock.Call {
	return e.mock.On("ValidateToken", tokenString)
}

func (e *MockTokenService_Expecter) SessionTokenDuration() *mock.Call {
	return e.mock.On("SessionTokenDuration")
}
