package userapi

import (
	"context"

	"google.golang.org/grpc"
)

// UserServiceClient calls the user service using the JSON codec.
type UserServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserServiceClient(cc grpc.ClientConnInterface) *UserServiceClient {
	return &UserServiceClient{cc: cc}
}

func (c *UserServiceClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, "CreateUser", in, opts)
}

func (c *UserServiceClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, "UpdateUser", in, opts)
}

func (c *UserServiceClient) DeleteUser(ctx context.Context, in *UserIDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeleteUser", in, opts)
}

func (c *UserServiceClient) ActivateUser(ctx context.Context, in *UserIDRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, "ActivateUser", in, opts)
}

func (c *UserServiceClient) DeactivateUser(ctx context.Context, in *UserIDRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, "DeactivateUser", in, opts)
}

func (c *UserServiceClient) ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, "ChangePassword", in, opts)
}

func (c *UserServiceClient) GetUser(ctx context.Context, in *UserIDRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, "GetUser", in, opts)
}

func (c *UserServiceClient) SearchUsers(ctx context.Context, in *SearchUsersRequest, opts ...grpc.CallOption) (*UsersPage, error) {
	return invoke[UsersPage](ctx, c.cc, "SearchUsers", in, opts)
}

func (c *UserServiceClient) SearchUsersByLastName(ctx context.Context, in *SearchByLastNameRequest, opts ...grpc.CallOption) (*UsersPage, error) {
	return invoke[UsersPage](ctx, c.cc, "SearchUsersByLastName", in, opts)
}

func (c *UserServiceClient) SearchUsersByDocumentNumber(ctx context.Context, in *SearchByDocumentNumberRequest, opts ...grpc.CallOption) (*UsersPage, error) {
	return invoke[UsersPage](ctx, c.cc, "SearchUsersByDocumentNumber", in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
