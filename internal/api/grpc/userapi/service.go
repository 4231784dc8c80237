// Package userapi defines the users.v1.UserService gRPC contract: messages, the JSON
// codec they travel with, the service descriptor and a client.
package userapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "users.v1.UserService"

// UserServiceServer is the server API for the user service.
type UserServiceServer interface {
	CreateUser(context.Context, *CreateUserRequest) (*UserResponse, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(context.Context, *UserIDRequest) (*Empty, error)
	ActivateUser(context.Context, *UserIDRequest) (*UserResponse, error)
	DeactivateUser(context.Context, *UserIDRequest) (*UserResponse, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*UserResponse, error)
	GetUser(context.Context, *UserIDRequest) (*UserResponse, error)
	SearchUsers(context.Context, *SearchUsersRequest) (*UsersPage, error)
	SearchUsersByLastName(context.Context, *SearchByLastNameRequest) (*UsersPage, error)
	SearchUsersByDocumentNumber(context.Context, *SearchByDocumentNumberRequest) (*UsersPage, error)
}

// ServiceDesc describes the user service for grpc.Server registration.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("CreateUser", UserServiceServer.CreateUser),
		unaryMethod("UpdateUser", UserServiceServer.UpdateUser),
		unaryMethod("DeleteUser", UserServiceServer.DeleteUser),
		unaryMethod("ActivateUser", UserServiceServer.ActivateUser),
		unaryMethod("DeactivateUser", UserServiceServer.DeactivateUser),
		unaryMethod("ChangePassword", UserServiceServer.ChangePassword),
		unaryMethod("GetUser", UserServiceServer.GetUser),
		unaryMethod("SearchUsers", UserServiceServer.SearchUsers),
		unaryMethod("SearchUsersByLastName", UserServiceServer.SearchUsersByLastName),
		unaryMethod("SearchUsersByDocumentNumber", UserServiceServer.SearchUsersByDocumentNumber),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "users/v1/users.json",
}

// RegisterUserServiceServer registers srv on s.
func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// FullMethod returns the full gRPC method name of a user service method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryMethod[Req, Resp any](name string, call func(UserServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(UserServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(UserServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// UnimplementedUserServiceServer answers every method with codes.Unimplemented.
type UnimplementedUserServiceServer struct{}

func (UnimplementedUserServiceServer) CreateUser(context.Context, *CreateUserRequest) (*UserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateUser not implemented")
}

func (UnimplementedUserServiceServer) UpdateUser(context.Context, *UpdateUserRequest) (*UserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateUser not implemented")
}

func (UnimplementedUserServiceServer) DeleteUser(context.Context, *UserIDRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteUser not implemented")
}

func (UnimplementedUserServiceServer) ActivateUser(context.Context, *UserIDRequest) (*UserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ActivateUser not implemented")
}

func (UnimplementedUserServiceServer) DeactivateUser(context.Context, *UserIDRequest) (*UserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeactivateUser not implemented")
}

func (UnimplementedUserServiceServer) ChangePassword(context.Context, *ChangePasswordRequest) (*UserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangePassword not implemented")
}

func (UnimplementedUserServiceServer) GetUser(context.Context, *UserIDRequest) (*UserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}

func (UnimplementedUserServiceServer) SearchUsers(context.Context, *SearchUsersRequest) (*UsersPage, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchUsers not implemented")
}

func (UnimplementedUserServiceServer) SearchUsersByLastName(context.Context, *SearchByLastNameRequest) (*UsersPage, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchUsersByLastName not implemented")
}

func (UnimplementedUserServiceServer) SearchUsersByDocumentNumber(context.Context, *SearchByDocumentNumberRequest) (*UsersPage, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchUsersByDocumentNumber not implemented")
}
