package router

import (
	"context"
	"runtime/debug"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/validator"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	grpcctx "github.com/dtroode/users-server/internal/api/grpc/context"
	"github.com/dtroode/users-server/internal/api/grpc/handler"
	"github.com/dtroode/users-server/internal/api/grpc/middleware"
	"github.com/dtroode/users-server/internal/api/grpc/userapi"
	"github.com/dtroode/users-server/internal/logger"
)

// Router wires the user service, the health service and the interceptor chain
// into a gRPC server.
type Router struct {
	userService handler.UserService
	metrics     *middleware.Metrics
	logger      *logger.Logger
}

// New creates new gRPC Router instance. A nil metrics disables request metrics.
func New(userService handler.UserService, metrics *middleware.Metrics, logger *logger.Logger) *Router {
	return &Router{
		userService: userService,
		metrics:     metrics,
		logger:      logger,
	}
}

func skipHealth(_ context.Context, c interceptors.CallMeta) bool {
	return c.Service != healthpb.Health_ServiceDesc.ServiceName
}

// Register builds the gRPC server. Interceptors run in order: panic recovery,
// request ID, logging, metrics, request validation.
func (r *Router) Register() *grpc.Server {
	requestIDs := grpcctx.NewManager()
	requestID := middleware.NewRequestID(requestIDs, r.logger)
	logging := middleware.NewLogging(r.logger, requestIDs)

	chain := []grpc.UnaryServerInterceptor{
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(r.recoverPanic)),
		requestID.HandleGRPC,
		logging.HandleGRPC,
	}
	if r.metrics != nil {
		chain = append(chain, selector.UnaryServerInterceptor(r.metrics.HandleGRPC, selector.MatchFunc(skipHealth)))
	}
	chain = append(chain, validator.UnaryServerInterceptor(
		validator.WithOnValidationErrCallback(func(ctx context.Context, err error) {
			r.logger.Debug("gRPC request validation failed",
				"error", err.Error())
		}),
	))

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(chain...))

	r.registerUserRoutes(s)
	r.registerHealth(s)

	return s
}

func (r *Router) registerUserRoutes(server *grpc.Server) {
	userHandler := handler.NewUser(r.userService, r.logger)
	userapi.RegisterUserServiceServer(server, userHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(userapi.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, hs)
}

func (r *Router) recoverPanic(p any) error {
	r.logger.Error("gRPC handler panicked",
		"panic", p,
		"stack", string(debug.Stack()))
	return status.Error(codes.Internal, "internal server error")
}
