package context

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// RequestIDKey is the metadata key carrying the request ID in both directions.
const RequestIDKey = "x-request-id"

type requestIDKey struct{}

// Manager moves request IDs between gRPC metadata and the request context.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// FromIncoming returns the request ID sent by the client, or a new random one
// when the client sent none.
func (m *Manager) FromIncoming(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if ids := md.Get(RequestIDKey); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.NewString()
}

// WithRequestID stores id in ctx.
func (m *Manager) WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored in ctx.
func (m *Manager) RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
