package mocks

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPurchaseRepository is a mock type for the PurchaseRepository interface.
type MockPurchaseRepository struct {
	mock.Mock
}

func NewMockPurchaseRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPurchaseRepository {
	m := &MockPurchaseRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPurchaseRepository) EXPECT() *MockPurchaseRepository_Expecter {
	return &MockPurchaseRepository_Expecter{mock: &m.Mock}
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	ret := m.Called(ctx, purchase)

	return ret.Error(0)
}

func (m *MockPurchaseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error) {
	ret := m.Called(ctx, userID)

	var r0 []*entity.Purchase
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Purchase)
	}

	return r0, ret.Error(1)
}

type MockPurchaseRepository_Expecter struct {
	mock *mock.Mock
}

func (e *MockPurchaseRepository_Expecter) Create(ctx, purchase any) *MockPurchaseRepository_Create_Call {
	return &MockPurchaseRepository_Create_Call{Call: e.mock.On("Create", ctx, purchase)}
}

func (e *MockPurchaseRepository_Expecter) ListByUser(ctx, userID any) *mock.Call {
	return e.mock.On("ListByUser", ctx, userID)
}

type MockPurchaseRepository_Create_Call struct {
	*mock.Call
}

func (c *MockPurchaseRepository_Create_Call) Run(run func(ctx context.Context, purchase *entity.Purchase)) *MockPurchaseRepository_Create_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Purchase))
	})

	return c
}

func (c *MockPurchaseRepository_Create_Call) Return(err error) *MockPurchaseRepository_Create_Call {
	c.Call.Return(err)

	return c
}
