package middleware

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMetrics_HandleGRPC(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	info := &grpc.UnaryServerInfo{FullMethod: "/users.v1.UserService/GetUser"}

	ok := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	notFound := func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "user not found")
	}

	for range 2 {
		_, err := m.HandleGRPC(context.Background(), nil, info, ok)
		require.NoError(t, err)
	}
	_, err := m.HandleGRPC(context.Background(), nil, info, notFound)
	require.Error(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues(info.FullMethod, "OK")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues(info.FullMethod, "NotFound")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}
