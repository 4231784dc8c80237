package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpcctx "github.com/dtroode/users-server/internal/api/grpc/context"
	"github.com/dtroode/users-server/internal/logger"
)

// Logging is a unary interceptor that logs gRPC requests and results.
type Logging struct {
	logger     *logger.Logger
	requestIDs *grpcctx.Manager
}

// NewLogging creates a new Logging middleware. Request IDs are read through requestIDs.
func NewLogging(logger *logger.Logger, requestIDs *grpcctx.Manager) *Logging {
	return &Logging{logger: logger, requestIDs: requestIDs}
}

// HandleGRPC logs method name, duration and status for each unary request.
// Server side failures are logged at error level, rejected requests at info.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	requestID, _ := l.requestIDs.RequestID(ctx)

	l.logger.Debug("gRPC request started",
		"method", info.FullMethod,
		"request_id", requestID)

	resp, err := handler(ctx, req)

	code := codeOf(err)
	attrs := []any{
		"method", info.FullMethod,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", code.String(),
	}

	switch {
	case err == nil:
		l.logger.Info("gRPC request completed", attrs...)
	case isServerFault(code):
		l.logger.Error("gRPC request failed", append(attrs, "error", err.Error())...)
	default:
		l.logger.Info("gRPC request rejected", append(attrs, "error", err.Error())...)
	}

	return resp, err
}

// codeOf returns the gRPC status code of err. Errors without a status are Internal.
func codeOf(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if st, ok := status.FromError(err); ok {
		return st.Code()
	}
	return codes.Internal
}

func isServerFault(code codes.Code) bool {
	switch code {
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
		return true
	}
	return false
}
