package handler

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/users-server/internal/api/grpc/userapi"
	"github.com/dtroode/users-server/internal/model"
)

func toAPIUser(u model.User) userapi.User {
	out := userapi.User{
		ID:             u.ID.String(),
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Phone:          u.Phone,
		DocumentType:   string(u.DocumentType),
		DocumentNumber: u.DocumentNumber,
		Address:        u.Address,
		Status:         string(u.Status),
	}
	if u.HasBirthDate() {
		out.BirthDate = u.BirthDate.Format(userapi.DateLayout)
	}
	return out
}

func toUserResponse(u model.User) *userapi.UserResponse {
	return &userapi.UserResponse{User: toAPIUser(u)}
}

func toUsersPage(p model.Page[model.User]) *userapi.UsersPage {
	users := make([]userapi.User, 0, len(p.Content))
	for _, u := range p.Content {
		users = append(users, toAPIUser(u))
	}
	return &userapi.UsersPage{
		Users:         users,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q", raw)
	}
	return id, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(userapi.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return d, nil
}

func parseStatus(raw string) (model.UserStatus, error) {
	if raw == "" {
		return "", nil
	}
	s := model.UserStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}

func fromCreateRequest(req *userapi.CreateUserRequest) (model.User, error) {
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return model.User{}, err
	}

	u := model.User{
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DocumentNumber: req.DocumentNumber,
		Address:        req.Address,
		BirthDate:      birthDate,
	}
	if req.DocumentType != "" {
		u.DocumentType, err = model.ParseDocumentType(req.DocumentType)
		if err != nil {
			return model.User{}, err
		}
	}
	return u, nil
}

// fromUpdateRequest builds the replacement user. The document pair is not part of the
// update message and is copied from current.
func fromUpdateRequest(req *userapi.UpdateUserRequest, current model.User) (model.User, error) {
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return model.User{}, err
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return model.User{}, err
	}

	return model.User{
		ID:             current.ID,
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DocumentType:   current.DocumentType,
		DocumentNumber: current.DocumentNumber,
		Address:        req.Address,
		Status:         status,
		BirthDate:      birthDate,
	}, nil
}

func fromPaging(p userapi.Paging) model.PageRequest {
	return model.PageRequest{
		Page:      p.Page,
		Size:      p.Size,
		Sort:      model.SortField(p.SortField),
		Direction: model.SortDirection(p.Direction),
	}
}

func fromSearchRequest(req *userapi.SearchUsersRequest) (model.UserSearchFilter, error) {
	filter := model.UserSearchFilter{
		LastName:       req.LastName,
		DocumentNumber: req.DocumentNumber,
	}

	status, err := parseStatus(req.Status)
	if err != nil {
		return model.UserSearchFilter{}, err
	}
	if status != "" {
		filter.Status = &status
	}

	if req.BirthDateFrom != "" {
		from, err := parseDate(req.BirthDateFrom)
		if err != nil {
			return model.UserSearchFilter{}, err
		}
		filter.BirthDateFrom = &from
	}
	if req.BirthDateTo != "" {
		to, err := parseDate(req.BirthDateTo)
		if err != nil {
			return model.UserSearchFilter{}, err
		}
		filter.BirthDateTo = &to
	}

	return filter, nil
}
