package mocks

import (
	"gamestore/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a mock type for the RepositoryFactory interface.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &m.Mock}
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := m.Called()

	return ret.Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) CompanyRepo() repository.CompanyRepository {
	ret := m.Called()

	return ret.Get(0).(repository.CompanyRepository)
}

func (m *MockRepositoryFactory) GameRepo() repository.GameRepository {
	ret := m.Called()

	return ret.Get(0).(repository.GameRepository)
}

func (m *MockRepositoryFactory) CommentRepo() repository.CommentRepository {
	ret := m.Called()

	return ret.Get(0).(repository.CommentRepository)
}

func (m *MockRepositoryFactory) PurchaseRepo() repository.PurchaseRepository {
	ret := m.Called()

	return ret.Get(0).(repository.PurchaseRepository)
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (e *MockRepositoryFactory_Expecter) UserRepo() *mock.Call {
	return e.mock.On("UserRepo")
}

func (e *MockRepositoryFactory_Expecter) CompanyRepo() *mock.Call {
	return e.mock.On("CompanyRepo")
}

func (e *MockRepositoryFactory_Expecter) GameRepo() *mock.Call {
	return e.mock.On("GameRepo")
}

func (e *MockRepositoryFactory_Expecter) CommentRepo() *mock.Call {
	return e.mock.On("CommentRepo")
}

func (e *MockRepositoryFactory_Expecter) PurchaseRepo() *mock.Call {
	return e.mock.On("PurchaseRepo")
}
