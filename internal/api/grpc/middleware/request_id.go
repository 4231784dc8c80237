package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	grpcctx "github.com/dtroode/users-server/internal/api/grpc/context"
	"github.com/dtroode/users-server/internal/logger"
)

// RequestID is a unary interceptor that assigns every request an ID, stores it in
// the context and echoes it in the response header.
type RequestID struct {
	manager *grpcctx.Manager
	logger  *logger.Logger
}

func NewRequestID(manager *grpcctx.Manager, logger *logger.Logger) *RequestID {
	return &RequestID{manager: manager, logger: logger}
}

func (r *RequestID) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	id := r.manager.FromIncoming(ctx)
	ctx = r.manager.WithRequestID(ctx, id)

	// Fails only outside a real server stream, e.g. in direct handler calls.
	if err := grpc.SetHeader(ctx, metadata.Pairs(grpcctx.RequestIDKey, id)); err != nil {
		r.logger.Debug("failed to set request id header", "request_id", id, "error", err.Error())
	}

	return handler(ctx, req)
}
