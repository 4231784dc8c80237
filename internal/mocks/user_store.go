package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/users-server/internal/model"
)

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

// NewUserStore creates a UserStore mock that asserts its expectations on cleanup.
func NewUserStore(t testingT) *UserStore {
	m := &UserStore{}
	register(&m.Mock, t)
	return m
}

func (m *UserStore) Create(ctx context.Context, user model.User, passwordHash string) (model.User, error) {
	args := m.Called(ctx, user, passwordHash)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user model.User, passwordHash string) (model.User, error) {
	args := m.Called(ctx, user, passwordHash)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) FindByIDWithPassword(ctx context.Context, id uuid.UUID) (model.UserWithPassword, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.UserWithPassword), args.Error(1)
}

func (m *UserStore) Search(ctx context.Context, filter model.UserSearchFilter, req model.PageRequest) (model.Page[model.User], error) {
	args := m.Called(ctx, filter, req)
	return args.Get(0).(model.Page[model.User]), args.Error(1)
}

func (m *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserStore) ExistsByDocumentNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}
