package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/users-server/internal/model"
)

func handleError(err error) error {
	var domainErr *model.Error
	hasMessage := errors.As(err, &domainErr)

	switch {
	case errors.Is(err, model.ErrNotFound):
		if hasMessage {
			return status.Error(codes.NotFound, domainErr.Message)
		}
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, model.ErrInvalidDocument),
		errors.Is(err, model.ErrInvalidPassword),
		errors.Is(err, model.ErrValidation):
		if hasMessage {
			return status.Error(codes.InvalidArgument, domainErr.Message)
		}
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

func invalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}
