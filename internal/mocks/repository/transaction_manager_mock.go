// Package mocks provides testify mocks for the domain repository interfaces.
package mocks

import (
	"context"

	"gamestore/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock type for the TransactionManager interface.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) EXPECT() *MockTransactionManager_Expecter {
	return &MockTransactionManager_Expecter{mock: &m.Mock}
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := m.Called(ctx, fn)

	return ret.Error(0)
}

type MockTransactionManager_Expecter struct {
	mock *mock.Mock
}

func (e *MockTransactionManager_Expecter) Execute(ctx any, fn any) *MockTransactionManager_Execute_Call {
	return &MockTransactionManager_Execute_Call{Call: e.mock.On("Execute", ctx, fn)}
}

type MockTransactionManager_Execute_Call struct {
	*mock.Call
}

func (c *MockTransactionManager_Execute_Call) Run(run func(ctx context.Context, fn func(repository.RepositoryFactory) error)) *MockTransactionManager_Execute_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(func(repository.RepositoryFactory) error))
	})

	return c
}

func (c *MockTransactionManager_Execute_Call) Return(err error) *MockTransactionManager_Execute_Call {
	c.Call.Return(err)

	return c
}
