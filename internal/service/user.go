package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/users-server/internal/logger"
	"github.com/dtroode/users-server/internal/model"
)

// User implements user management use cases on top of a UserStore.
type User struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
	now       func() time.Time
}

// NewUser creates a new User service.
func NewUser(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
		now:       time.Now,
	}
}

// Create validates a new user, hashes its password and stores it as ACTIVE.
// The ID and Status of the draft are ignored.
func (s *User) Create(ctx context.Context, draft model.User, password string) (model.User, error) {
	s.logger.Debug("User service: creating user",
		"username", draft.Username)

	if draft.HasDocument() && !draft.DocumentType.IsValidNumber(draft.DocumentNumber) {
		s.logger.Info("User service: invalid document number",
			"username", draft.Username,
			"document_type", draft.DocumentType)
		return model.User{}, model.NewInvalidDocumentError(fmt.Sprintf(
			"document number %q is not a valid %s (%s)",
			draft.DocumentNumber, draft.DocumentType, draft.DocumentType.Description()))
	}

	exists, err := s.userStore.ExistsByUsername(ctx, draft.Username)
	if err != nil {
		s.logger.Error("User service: failed to check username",
			"username", draft.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return model.User{}, model.NewValidationError(fmt.Sprintf("username %q is already in use", draft.Username))
	}

	if draft.Email != "" {
		exists, err = s.userStore.ExistsByEmail(ctx, draft.Email)
		if err != nil {
			s.logger.Error("User service: failed to check email",
				"username", draft.Username,
				"error", err.Error())
			return model.User{}, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return model.User{}, model.NewValidationError(fmt.Sprintf("email %q is already in use", draft.Email))
		}
	}

	if draft.DocumentNumber != "" {
		exists, err = s.userStore.ExistsByDocumentNumber(ctx, draft.DocumentNumber)
		if err != nil {
			s.logger.Error("User service: failed to check document number",
				"username", draft.Username,
				"error", err.Error())
			return model.User{}, fmt.Errorf("failed to check document number: %w", err)
		}
		if exists {
			return model.User{}, model.NewValidationError(fmt.Sprintf("document number %q is already in use", draft.DocumentNumber))
		}
	}

	if draft.HasBirthDate() && draft.AgeAt(s.now()) < model.AdultAge {
		return model.User{}, model.NewValidationError(fmt.Sprintf("user must be at least %d years old", model.AdultAge))
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("User service: failed to hash password",
			"username", draft.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	draft.ID = uuid.Nil
	draft.Status = model.UserStatusActive

	created, err := s.userStore.Create(ctx, draft, hash)
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"username", draft.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", created.ID,
		"username", created.Username)

	return created, nil
}

// Update replaces the stored fields of a user, keeping its ID and password hash.
// Callers carry the existing document pair forward. Uniqueness of username and
// email is not checked here.
func (s *User) Update(ctx context.Context, id uuid.UUID, user model.User) (model.User, error) {
	s.logger.Debug("User service: updating user",
		"user_id", id)

	existing, err := s.load(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	user.ID = existing.User.ID
	if user.Status == "" {
		user.Status = existing.User.Status
	}

	updated, err := s.userStore.Update(ctx, user, existing.PasswordHash)
	if err != nil {
		s.logger.Error("User service: failed to update user",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated",
		"user_id", id)

	return updated, nil
}

// Delete marks a user as DELETED. The reserved administrator account cannot be deleted.
func (s *User) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Debug("User service: deleting user",
		"user_id", id)

	existing, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if existing.User.Username == model.ReservedUsername {
		s.logger.Info("User service: refused to delete administrator",
			"user_id", id)
		return model.NewValidationError("the administrator account cannot be deleted")
	}

	if _, err := s.userStore.Update(ctx, existing.User.WithStatus(model.UserStatusDeleted), existing.PasswordHash); err != nil {
		s.logger.Error("User service: failed to delete user",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted",
		"user_id", id)

	return nil
}

// Activate sets the user status to ACTIVE, whatever the current status is.
func (s *User) Activate(ctx context.Context, id uuid.UUID) (model.User, error) {
	return s.setStatus(ctx, id, model.UserStatusActive)
}

// Deactivate sets the user status to INACTIVE, whatever the current status is.
func (s *User) Deactivate(ctx context.Context, id uuid.UUID) (model.User, error) {
	return s.setStatus(ctx, id, model.UserStatusInactive)
}

// ChangePassword verifies the current password and stores a hash of the new one.
func (s *User) ChangePassword(ctx context.Context, id uuid.UUID, current, next, confirmation string) (model.User, error) {
	s.logger.Debug("User service: changing password",
		"user_id", id)

	existing, err := s.load(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if !s.hasher.Verify(current, existing.PasswordHash) {
		s.logger.Info("User service: current password mismatch",
			"user_id", id)
		return model.User{}, model.NewInvalidPasswordError("current password is incorrect")
	}

	if next != confirmation {
		return model.User{}, model.NewInvalidPasswordError("new password and confirmation do not match")
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		s.logger.Error("User service: failed to hash password",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := s.userStore.Update(ctx, existing.User, hash)
	if err != nil {
		s.logger.Error("User service: failed to store new password",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("User service: password changed",
		"user_id", id)

	return updated, nil
}

// GetByID returns a user regardless of its status.
func (s *User) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug("User service: failed to get user",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *User) setStatus(ctx context.Context, id uuid.UUID, status model.UserStatus) (model.User, error) {
	s.logger.Debug("User service: changing status",
		"user_id", id,
		"status", status)

	existing, err := s.load(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	updated, err := s.userStore.Update(ctx, existing.User.WithStatus(status), existing.PasswordHash)
	if err != nil {
		s.logger.Error("User service: failed to change status",
			"user_id", id,
			"status", status,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to change user status: %w", err)
	}

	s.logger.Info("User service: status changed",
		"user_id", id,
		"status", status)

	return updated, nil
}

func (s *User) load(ctx context.Context, id uuid.UUID) (model.UserWithPassword, error) {
	existing, err := s.userStore.FindByIDWithPassword(ctx, id)
	if err != nil {
		s.logger.Debug("User service: failed to load user",
			"user_id", id,
			"error", err.Error())
		return model.UserWithPassword{}, fmt.Errorf("failed to load user: %w", err)
	}
	return existing, nil
}
