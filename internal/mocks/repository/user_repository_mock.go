package mocks

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock type for the UserRepository interface.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &m.Mock}
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := m.Called(ctx, email)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	ret := m.Called(ctx, token)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := m.Called(ctx, user)

	return ret.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	ret := m.Called(ctx, user)

	return ret.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	ret := m.Called(ctx)

	var r0 []*entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.User)
	}

	return r0, ret.Error(1)
}

func (m *MockUserRepository) AddWishlistGame(ctx context.Context, userID, gameID uuid.UUID) error {
	ret := m.Called(ctx, userID, gameID)

	return ret.Error(0)
}

func (m *MockUserRepository) RemoveWishlistGame(ctx context.Context, userID, gameID uuid.UUID) error {
	ret := m.Called(ctx, userID, gameID)

	return ret.Error(0)
}

func (m *MockUserRepository) AddLibraryGame(ctx context.Context, userID, gameID uuid.UUID) error {
	ret := m.Called(ctx, userID, gameID)

	return ret.Error(0)
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (e *MockUserRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockUserRepository_Expecter) FindByEmail(ctx, email any) *mock.Call {
	return e.mock.On("FindByEmail", ctx, email)
}

func (e *MockUserRepository_Expecter) FindByResetToken(ctx, token any) *mock.Call {
	return e.mock.On("FindByResetToken", ctx, token)
}

func (e *MockUserRepository_Expecter) Create(ctx, user any) *MockUserRepository_Create_Call {
	return &MockUserRepository_Create_Call{Call: e.mock.On("Create", ctx, user)}
}

func (e *MockUserRepository_Expecter) Update(ctx, user any) *MockUserRepository_Update_Call {
	return &MockUserRepository_Update_Call{Call: e.mock.On("Update", ctx, user)}
}

func (e *MockUserRepository_Expecter) List(ctx any) *mock.Call {
	return e.mock.On("List", ctx)
}

func (e *MockUserRepository_Expecter) AddWishlistGame(ctx, userID, gameID any) *mock.Call {
	return e.mock.On("AddWishlistGame", ctx, userID, gameID)
}

func (e *MockUserRepository_Expecter) RemoveWishlistGame(ctx, userID, gameID any) *mock.Call {
	return e.mock.On("RemoveWishlistGame", ctx, userID, gameID)
}

func (e *MockUserRepository_Expecter) AddLibraryGame(ctx, userID, gameID any) *mock.Call {
	return e.mock.On("AddLibraryGame", ctx, userID, gameID)
}

type MockUserRepository_Create_Call struct {
	*mock.Call
}

func (c *MockUserRepository_Create_Call) Run(run func(ctx context.Context, user *entity.User)) *MockUserRepository_Create_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.User))
	})

	return c
}

func (c *MockUserRepository_Create_Call) Return(err error) *MockUserRepository_Create_Call {
	c.Call.Return(err)

	return c
}

type MockUserRepository_Update_Call struct {
	*mock.Call
}

func (c *MockUserRepository_Update_Call) Run(run func(ctx context.Context, user *entity.User)) *MockUserRepository_Update_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.User))
	})

	return c
}

func (c *MockUserRepository_Update_Call) Return(err error) *MockUserRepository_Update_Call {
	c.Call.Return(err)

	return c
}
