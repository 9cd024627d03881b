package server

import (
	"alumni-chat/auth"
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func startHealthServer(t *testing.T) (*HealthServer, healthpb.HealthClient) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	issuer, err := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", "alumni-chat-test", time.Hour)
	require.NoError(t, err)

	h := NewHealthServer(log, "alumni.chat")
	s := NewGrpcServer(log, issuer, h)
	listener := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(listener) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return h, healthpb.NewHealthClient(conn)
}

func TestHealthServer_Reports_Probe_Result(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	h, client := startHealthServer(t)

	// Given no probe ran yet
	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: "alumni.chat"})
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)

	// When the probes pass
	h.SetServing(true)

	// Then the check needs no token and says serving
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{})
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_SERVING, resp.Status)

	// When the server shuts down
	h.Shutdown()

	// Then
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: "alumni.chat"})
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}
