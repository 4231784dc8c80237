package service

import (
	"context"
	"fmt"

	"github.com/dtroode/users-server/internal/model"
)

// Search returns a page of users matching the filter, sorted by ID unless requested otherwise.
// A filter without status only returns ACTIVE users.
func (s *User) Search(ctx context.Context, filter model.UserSearchFilter, req model.PageRequest) (model.Page[model.User], error) {
	return s.search(ctx, filter, req, model.SortFieldID)
}

// SearchByLastName returns users whose last name contains lastName, sorted by last name by default.
// An empty status means ACTIVE.
func (s *User) SearchByLastName(ctx context.Context, lastName string, status model.UserStatus, req model.PageRequest) (model.Page[model.User], error) {
	filter := model.UserSearchFilter{LastName: &lastName}
	if status != "" {
		filter.Status = &status
	}
	return s.search(ctx, filter, req, model.SortFieldLastName)
}

// SearchByDocumentNumber returns users whose document number contains number,
// sorted by document number by default. An empty status means ACTIVE.
func (s *User) SearchByDocumentNumber(ctx context.Context, number string, status model.UserStatus, req model.PageRequest) (model.Page[model.User], error) {
	filter := model.UserSearchFilter{DocumentNumber: &number}
	if status != "" {
		filter.Status = &status
	}
	return s.search(ctx, filter, req, model.SortFieldDocumentNumber)
}

func (s *User) search(ctx context.Context, filter model.UserSearchFilter, req model.PageRequest, defaultSort model.SortField) (model.Page[model.User], error) {
	req, err := normalizePageRequest(req, defaultSort)
	if err != nil {
		return model.Page[model.User]{}, err
	}

	if filter.Status == nil {
		active := model.UserStatusActive
		filter.Status = &active
	}

	s.logger.Debug("User service: searching users",
		"page", req.Page,
		"size", req.Size,
		"sort", req.Sort,
		"direction", req.Direction)

	page, err := s.userStore.Search(ctx, filter, req)
	if err != nil {
		s.logger.Error("User service: failed to search users",
			"error", err.Error())
		return model.Page[model.User]{}, fmt.Errorf("failed to search users: %w", err)
	}

	return page, nil
}

func normalizePageRequest(req model.PageRequest, defaultSort model.SortField) (model.PageRequest, error) {
	switch {
	case req.Page < 0:
		req.Page = 0
	case req.Page > model.MaxPage:
		req.Page = model.MaxPage
	}

	switch {
	case req.Size <= 0:
		req.Size = model.DefaultPageSize
	case req.Size > model.MaxPageSize:
		req.Size = model.MaxPageSize
	}

	if req.Sort == "" {
		req.Sort = defaultSort
	}
	if !req.Sort.Valid() {
		return model.PageRequest{}, model.NewValidationError(fmt.Sprintf("unsupported sort field %q", req.Sort))
	}

	switch req.Direction {
	case "":
		req.Direction = model.SortAsc
	case model.SortAsc, model.SortDesc:
	default:
		return model.PageRequest{}, model.NewValidationError(fmt.Sprintf("unsupported sort direction %q", req.Direction))
	}

	return req, nil
}
