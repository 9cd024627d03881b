package server

import (
	"alumni-chat/auth"
	"log/slog"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer publishes the serving status computed by the health probes
// through the standard gRPC health protocol, for the process as a whole and
// under the service name.
type HealthServer struct {
	health  *health.Server
	service string
	log     *slog.Logger
}

func NewHealthServer(log *slog.Logger, service string) *HealthServer {
	h := &HealthServer{health: health.NewServer(), service: service, log: log}
	h.SetServing(false)
	return h
}

func (h *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(h.service, status)
	h.log.Debug("Serving status updated", "service", h.service, "status", status.String())
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *HealthServer) Shutdown() {
	h.health.Shutdown()
}

// NewGrpcServer builds the gRPC server with request logging and bearer
// authentication, health checks excepted.
func NewGrpcServer(log *slog.Logger, issuer *auth.TokenIssuer, h *HealthServer) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(log),
			auth.UnaryInterceptor(issuer),
		))
	healthpb.RegisterHealthServer(s, h.health)
	return s
}
