package mocks

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCommentRepository is a mock type for the CommentRepository interface.
type MockCommentRepository struct {
	mock.Mock
}

func NewMockCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommentRepository) EXPECT() *MockCommentRepository_Expecter {
	return &MockCommentRepository_Expecter{mock: &m.Mock}
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Comment)
	}

	return r0, ret.Error(1)
}

func (m *MockCommentRepository) FindByUserAndGame(ctx context.Context, userID, gameID uuid.UUID) (*entity.Comment, error) {
	ret := m.Called(ctx, userID, gameID)

	var r0 *entity.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Comment)
	}

	return r0, ret.Error(1)
}

func (m *MockCommentRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]*entity.Comment, error) {
	ret := m.Called(ctx, gameID)

	var r0 []*entity.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Comment)
	}

	return r0, ret.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	ret := m.Called(ctx, comment)

	return ret.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

type MockCommentRepository_Expecter struct {
	mock *mock.Mock
}

func (e *MockCommentRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockCommentRepository_Expecter) FindByUserAndGame(ctx, userID, gameID any) *mock.Call {
	return e.mock.On("FindByUserAndGame", ctx, userID, gameID)
}

func (e *MockCommentRepository_Expecter) ListByGame(ctx, gameID any) *mock.Call {
	return e.mock.On("ListByGame", ctx, gameID)
}

func (e *MockCommentRepository_Expecter) Create(ctx, comment any) *MockCommentRepository_Create_Call {
	return &MockCommentRepository_Create_Call{Call: e.mock.On("Create", ctx, comment)}
}

func (e *MockCommentRepository_Expecter) Delete(ctx, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

type MockCommentRepository_Create_Call struct {
	*mock.Call
}

func (c *MockCommentRepository_Create_Call) Run(run func(ctx context.Context, comment *entity.Comment)) *MockCommentRepository_Create_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Comment))
	})

	return c
}

func (c *MockCommentRepository_Create_Call) Return(err error) *MockCommentRepository_Create_Call {
	c.Call.Return(err)

	return c
}
