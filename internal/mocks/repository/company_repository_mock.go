package mocks

import (
	"context"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCompanyRepository is a mock type for the CompanyRepository interface.
type MockCompanyRepository struct {
	mock.Mock
}

func NewMockCompanyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCompanyRepository {
	m := &MockCompanyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCompanyRepository) EXPECT() *MockCompanyRepository_Expecter {
	return &MockCompanyRepository_Expecter{mock: &m.Mock}
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.Company
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Company)
	}

	return r0, ret.Error(1)
}

func (m *MockCompanyRepository) FindByEmail(ctx context.Context, email string) (*entity.Company, error) {
	ret := m.Called(ctx, email)

	var r0 *entity.Company
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Company)
	}

	return r0, ret.Error(1)
}

func (m *MockCompanyRepository) FindByResetToken(ctx context.Context, token string) (*entity.Company, error) {
	ret := m.Called(ctx, token)

	var r0 *entity.Company
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Company)
	}

	return r0, ret.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	ret := m.Called(ctx, company)

	return ret.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *entity.Company) error {
	ret := m.Called(ctx, company)

	return ret.Error(0)
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	ret := m.Called(ctx)

	var r0 []*entity.Company
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Company)
	}

	return r0, ret.Error(1)
}

type MockCompanyRepository_Expecter struct {
	mock *mock.Mock
}

func (e *MockCompanyRepository_Expecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (e *MockCompanyRepository_Expecter) FindByEmail(ctx, email any) *mock.Call {
	return e.mock.On("FindByEmail", ctx, email)
}

func (e *MockCompanyRepository_Expecter) FindByResetToken(ctx, token any) *mock.Call {
	return e.mock.On("FindByResetToken", ctx, token)
}

func (e *MockCompanyRepository_Expecter) Create(ctx, company any) *MockCompanyRepository_Create_Call {
	return &MockCompanyRepository_Create_Call{Call: e.mock.On("Create", ctx, company)}
}

func (e *MockCompanyRepository_Expecter) Update(ctx, company any) *MockCompanyRepository_Update_Call {
	return &MockCompanyRepository_Update_Call{Call: e.mock.On("Update", ctx, company)}
}

func (e *MockCompanyRepository_Expecter) List(ctx any) *mock.Call {
	return e.mock.On("List", ctx)
}

type MockCompanyRepository_Create_Call struct {
	*mock.Call
}

func (c *MockCompanyRepository_Create_Call) Run(run func(ctx context.Context, company *entity.Company)) *MockCompanyRepository_Create_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Company))
	})

	return c
}

func (c *MockCompanyRepository_Create_Call) Return(err error) *MockCompanyRepository_Create_Call {
	c.Call.Return(err)

	return c
}

type MockCompanyRepository_Update_Call struct {
	*mock.Call
}

func (c *MockCompanyRepository_Update_Call) Run(run func(ctx context.Context, company *entity.Company)) *MockCompanyRepository_Update_Call {
	c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Company))
	})

	return c
}

func (c *MockCompanyRepository_Update_Call) Return(err error) *MockCompanyRepository_Update_Call {
	c.Call.Return(err)

	return c
}
