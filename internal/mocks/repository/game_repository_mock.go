package mocks

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGameRepository is a mock type for the GameRepository interface.
type MockGameRepository struct {
	mock.Mock
}

func NewMockGameRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGameRepository {
	m := &MockGameRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockGameRepository) EXPECT() *MockGameRepository_Expecter {
	return &MockGameRepository_Expecter{mock: &m.Mock}
}

func (m *MockGameRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Game)
	}

	return r0, ret.Error(1)
}

func (m *MockGameRepository) FindByName(ctx context.Context, normalizedName string) (*entity.Game, error) {
	ret := m.Called(ctx, normalizedName)

	var r0 *entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Game)
	}

	return r0, ret.Error(1)
}

func (m *MockGameRepository) Create(ctx context.Context, game *entity.Game) error {
	ret := m.Called(ctx, game)

	return ret.Error(0)
}

func (m *MockGameRepository) Update(ctx context.Context, game *entity.Game) error {
	ret := m.Called(ctx, game)

	return ret.Error(0)
}

func (m *MockGameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

func (m *MockGameRepository) List(ctx context.Context) ([]*entity.Game, error) {
	ret := m.Called(ctx)

	var r0 []*entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Game)
	}

	return r0, ret.Error(1)
}

func (m *MockGameRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

func (m *MockGameRepository) AdjustWishlistCount(ctx context.Context, id uuid.UUID, delta int64) error {
	ret := m.Called(ctx, id, delta)

	return ret.Error(0)
}

func (m *MockGameRepository) IncrementPurchases(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

func (m *MockGameRepository) SetAverageRating(ctx context.Context, id uuid.UUID, average float64) error {
	ret := m.Called(ctx, id, average)

	return ret.Error(0)
}

type MockGameRepository_Expecter struct {
	mock *mock.Mock
}

func (e *MockGameRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockGameRepository_Expecter) FindByName(ctx, normalizedName any) *mock.Call {
	return e.mock.On("FindByName", ctx, normalizedName)
}

func (e *MockGameRepository_Expecter) Create(ctx, game any) *MockGameRepository_Create_Call {
	return &MockGameRepository_Create_Call{Call: e.mock.On("Create", ctx, game)}
}

func (e *MockGameRepository_Expecter) Update(ctx, game any) *MockGameRepository_Update_Call {
	return &MockGameRepository_Update_Call{Call: e.mock.On("Update", ctx, game)}
}

func (e *MockGameRepository_Expecter) Delete(ctx, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

func (e *MockGameRepository_Expecter) List(ctx any) *mock.Call {
	return e.mock.On("List", ctx)
}

func (e *MockGameRepository_Expecter) IncrementViews(ctx, id any) *mock.Call {
	return e.mock.On("IncrementViews", ctx, id)
}

func (e *MockGameRepository_Expecter) AdjustWishlistCount(ctx, id, delta any) *mock.Call {
	return e.mock.On("AdjustWishlistCount", ctx, id, delta)
}

func (e *MockGameRepository_Expecter) IncrementPurchases(ctx, id any) *mock.Call {
	return e.mock.On("IncrementPurchases", ctx, id)
}

func (e *MockGameRepository_Expecter) SetAverageRating(ctx, id, average any) *mock.Call {
	return e.mock.On("SetAverageRating", ctx, id, average)
}

type MockGameRepository_Create_Call struct {
	*mock.Call
}

func (c *MockGameRepository_Create_Call) Run(run func(ctx context.Context, game *entity.Game)) *MockGameRepository_Create_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Game))
	})

	return c
}

func (c *MockGameRepository_Create_Call) Return(err error) *MockGameRepository_Create_Call {
	c.Call.Return(err)

	return c
}

type MockGameRepository_Update_Call struct {
	*mock.Call
}

func (c *MockGameRepository_Update_Call) Run(run func(ctx context.Context, game *entity.Game)) *MockGameRepository_Update_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Game))
	})

	return c
}

func (c *MockGameRepository_Update_Call) Return(err error) *MockGameRepository_Update_Call {
	c.Call.Return(err)

	return c
}
