package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/users-server/internal/api/grpc/userapi"
	"github.com/dtroode/users-server/internal/logger"
	"github.com/dtroode/users-server/internal/model"
)

// UserService defines the user management use cases served over gRPC.
type UserService interface {
	Create(ctx context.Context, draft model.User, password string) (model.User, error)
	Update(ctx context.Context, id uuid.UUID, user model.User) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (model.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) (model.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, current, next, confirmation string) (model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	Search(ctx context.Context, filter model.UserSearchFilter, req model.PageRequest) (model.Page[model.User], error)
	SearchByLastName(ctx context.Context, lastName string, status model.UserStatus, req model.PageRequest) (model.Page[model.User], error)
	SearchByDocumentNumber(ctx context.Context, number string, status model.UserStatus, req model.PageRequest) (model.Page[model.User], error)
}

// User handles gRPC endpoints for users.
type User struct {
	userapi.UnimplementedUserServiceServer
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser registers a new active user.
func (h *User) CreateUser(ctx context.Context, req *userapi.CreateUserRequest) (*userapi.UserResponse, error) {
	h.logger.Debug("User handler: processing create user request",
		"username", req.Username)

	draft, err := fromCreateRequest(req)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	user, err := h.userService.Create(ctx, draft, req.Password)
	if err != nil {
		h.logger.Info("User handler: create user failed",
			"username", req.Username,
			"error", err.Error())
		return nil, handleError(err)
	}

	return toUserResponse(user), nil
}

// UpdateUser replaces the editable fields of a user.
func (h *User) UpdateUser(ctx context.Context, req *userapi.UpdateUserRequest) (*userapi.UserResponse, error) {
	h.logger.Debug("User handler: processing update user request",
		"user_id", req.ID)

	id, err := parseID(req.ID)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	current, err := h.userService.GetByID(ctx, id)
	if err != nil {
		return nil, handleError(err)
	}

	user, err := fromUpdateRequest(req, current)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	updated, err := h.userService.Update(ctx, id, user)
	if err != nil {
		h.logger.Info("User handler: update user failed",
			"user_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return toUserResponse(updated), nil
}

// DeleteUser soft deletes a user.
func (h *User) DeleteUser(ctx context.Context, req *userapi.UserIDRequest) (*userapi.Empty, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	if err := h.userService.Delete(ctx, id); err != nil {
		h.logger.Info("User handler: delete user failed",
			"user_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &userapi.Empty{}, nil
}

func (h *User) ActivateUser(ctx context.Context, req *userapi.UserIDRequest) (*userapi.UserResponse, error) {
	return h.changeStatus(ctx, req, h.userService.Activate)
}

func (h *User) DeactivateUser(ctx context.Context, req *userapi.UserIDRequest) (*userapi.UserResponse, error) {
	return h.changeStatus(ctx, req, h.userService.Deactivate)
}

// ChangePassword replaces the password of a user after checking the current one.
func (h *User) ChangePassword(ctx context.Context, req *userapi.ChangePasswordRequest) (*userapi.UserResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	user, err := h.userService.ChangePassword(ctx, id, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		h.logger.Info("User handler: change password failed",
			"user_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return toUserResponse(user), nil
}

// GetUser returns a user whatever its status.
func (h *User) GetUser(ctx context.Context, req *userapi.UserIDRequest) (*userapi.UserResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	user, err := h.userService.GetByID(ctx, id)
	if err != nil {
		return nil, handleError(err)
	}

	return toUserResponse(user), nil
}

// SearchUsers runs a combined filter search.
func (h *User) SearchUsers(ctx context.Context, req *userapi.SearchUsersRequest) (*userapi.UsersPage, error) {
	filter, err := fromSearchRequest(req)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	page, err := h.userService.Search(ctx, filter, fromPaging(req.Paging))
	if err != nil {
		h.logger.Info("User handler: search users failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return toUsersPage(page), nil
}

func (h *User) SearchUsersByLastName(ctx context.Context, req *userapi.SearchByLastNameRequest) (*userapi.UsersPage, error) {
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	page, err := h.userService.SearchByLastName(ctx, req.LastName, status, fromPaging(req.Paging))
	if err != nil {
		h.logger.Info("User handler: search by last name failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return toUsersPage(page), nil
}

func (h *User) SearchUsersByDocumentNumber(ctx context.Context, req *userapi.SearchByDocumentNumberRequest) (*userapi.UsersPage, error) {
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	page, err := h.userService.SearchByDocumentNumber(ctx, req.DocumentNumber, status, fromPaging(req.Paging))
	if err != nil {
		h.logger.Info("User handler: search by document number failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return toUsersPage(page), nil
}

func (h *User) changeStatus(ctx context.Context, req *userapi.UserIDRequest, change func(context.Context, uuid.UUID) (model.User, error)) (*userapi.UserResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, invalidArgument(err.Error())
	}

	user, err := change(ctx, id)
	if err != nil {
		h.logger.Info("User handler: status change failed",
			"user_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return toUserResponse(user), nil
}
