package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/users-server/internal/model"
)

// UserService is a mock of handler.UserService.
type UserService struct {
	mock.Mock
}

// NewUserService creates a UserService mock that asserts its expectations on cleanup.
func NewUserService(t testingT) *UserService {
	m := &UserService{}
	register(&m.Mock, t)
	return m
}

func (m *UserService) Create(ctx context.Context, draft model.User, password string) (model.User, error) {
	args := m.Called(ctx, draft, password)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Update(ctx context.Context, id uuid.UUID, user model.User) (model.User, error) {
	args := m.Called(ctx, id, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserService) Activate(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Deactivate(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) ChangePassword(ctx context.Context, id uuid.UUID, current, next, confirmation string) (model.User, error) {
	args := m.Called(ctx, id, current, next, confirmation)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Search(ctx context.Context, filter model.UserSearchFilter, req model.PageRequest) (model.Page[model.User], error) {
	args := m.Called(ctx, filter, req)
	return args.Get(0).(model.Page[model.User]), args.Error(1)
}

func (m *UserService) SearchByLastName(ctx context.Context, lastName string, status model.UserStatus, req model.PageRequest) (model.Page[model.User], error) {
	args := m.Called(ctx, lastName, status, req)
	return args.Get(0).(model.Page[model.User]), args.Error(1)
}

func (m *UserService) SearchByDocumentNumber(ctx context.Context, number string, status model.UserStatus, req model.PageRequest) (model.Page[model.User], error) {
	args := m.Called(ctx, number, status, req)
	return args.Get(0).(model.Page[model.User]), args.Error(1)
}
