package middleware

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcctx "github.com/dtroode/users-server/internal/api/grpc/context"
	"github.com/dtroode/users-server/internal/logger"
	"github.com/dtroode/users-server/internal/testutil"
)

func TestLogging_HandleGRPC(t *testing.T) {
	t.Parallel()

	lg := NewLogging(testutil.MakeNoopLogger(), grpcctx.NewManager())

	tests := []struct {
		name     string
		handler  grpc.UnaryHandler
		wantCode codes.Code
	}{
		{
			name: "success path",
			handler: func(ctx context.Context, req any) (any, error) {
				return "ok", nil
			},
			wantCode: codes.OK,
		},
		{
			name: "grpc error propagates",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, status.Error(codes.InvalidArgument, "bad input")
			},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "non-grpc error becomes Internal",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, errors.New("boom")
			},
			wantCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := &grpc.UnaryServerInfo{FullMethod: "/users.v1.UserService/GetUser"}
			resp, err := lg.HandleGRPC(context.Background(), struct{}{}, info, tt.handler)

			if tt.wantCode == codes.OK {
				assert.NoError(t, err)
				assert.Equal(t, "ok", resp)
				return
			}
			assert.Equal(t, tt.wantCode, codeOf(err))
		})
	}
}

func TestLogging_HandleGRPC_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	manager := grpcctx.NewManager()
	lg := NewLogging(logger.NewWithWriter(&buf, 0, "json"), manager)
	info := &grpc.UnaryServerInfo{FullMethod: "/users.v1.UserService/DeleteUser"}

	_, _ = lg.HandleGRPC(manager.WithRequestID(context.Background(), "req-9"), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "user not found")
	})
	assert.Contains(t, buf.String(), `"msg":"gRPC request rejected"`)
	assert.NotContains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"request_id":"req-9"`)

	buf.Reset()
	_, _ = lg.HandleGRPC(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, errors.New("db down")
	})
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"db down"`)
}
