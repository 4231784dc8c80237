// Package memory provides an in-process user store.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/users-server/internal/model"
	"github.com/dtroode/users-server/internal/search"
)

var _ model.UserStore = (*UserRepository)(nil)

type record struct {
	user         model.User
	passwordHash string
}

// UserRepository keeps users in a map and enforces the same unique columns as the SQL schema.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]record
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]record),
	}
}

func (r *UserRepository) Create(_ context.Context, user model.User, passwordHash string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if _, ok := r.users[user.ID]; ok {
		return model.User{}, fmt.Errorf("failed to create user: id %s already exists", user.ID)
	}
	if err := r.checkUnique(user); err != nil {
		return model.User{}, err
	}

	r.users[user.ID] = record{user: user, passwordHash: passwordHash}
	return user, nil
}

func (r *UserRepository) Update(_ context.Context, user model.User, passwordHash string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return model.User{}, model.ErrNotFound
	}
	if err := r.checkUnique(user); err != nil {
		return model.User{}, err
	}

	r.users[user.ID] = record{user: user, passwordHash: passwordHash}
	return user, nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return rec.user, nil
}

func (r *UserRepository) FindByIDWithPassword(_ context.Context, id uuid.UUID) (model.UserWithPassword, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.users[id]
	if !ok {
		return model.UserWithPassword{}, model.ErrNotFound
	}
	return model.UserWithPassword{User: rec.user, PasswordHash: rec.passwordHash}, nil
}

func (r *UserRepository) Search(_ context.Context, filter model.UserSearchFilter, req model.PageRequest) (model.Page[model.User], error) {
	predicates := search.FromFilter(filter)

	r.mu.RLock()
	matched := make([]model.User, 0)
	for _, rec := range r.users {
		if predicates.Matches(rec.user) {
			matched = append(matched, rec.user)
		}
	}
	r.mu.RUnlock()

	slices.SortStableFunc(matched, func(a, b model.User) int {
		return search.Compare(req.Sort, req.Direction, a, b)
	})

	total := int64(len(matched))
	start := max(0, min(req.Offset(), len(matched)))
	end := min(start+req.Size, len(matched))

	return model.NewPage(matched[start:end], req, total), nil
}

func (r *UserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	return r.exists(func(u model.User) bool { return u.Username == username }), nil
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return r.exists(func(u model.User) bool { return u.Email != "" && u.Email == email }), nil
}

func (r *UserRepository) ExistsByDocumentNumber(_ context.Context, number string) (bool, error) {
	return r.exists(func(u model.User) bool { return u.DocumentNumber != "" && u.DocumentNumber == number }), nil
}

func (r *UserRepository) exists(match func(model.User) bool) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.users {
		if match(rec.user) {
			return true
		}
	}
	return false
}

// checkUnique must be called with the write lock held.
func (r *UserRepository) checkUnique(user model.User) error {
	for id, rec := range r.users {
		if id == user.ID {
			continue
		}
		switch {
		case rec.user.Username == user.Username:
			return model.NewValidationError(fmt.Sprintf("username %q is already in use", user.Username))
		case user.Email != "" && rec.user.Email == user.Email:
			return model.NewValidationError(fmt.Sprintf("email %q is already in use", user.Email))
		case user.DocumentNumber != "" && rec.user.DocumentNumber == user.DocumentNumber:
			return model.NewValidationError(fmt.Sprintf("document number %q is already in use", user.DocumentNumber))
		}
	}
	return nil
}
