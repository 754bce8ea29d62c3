package grpc

import (
	"context"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	googlegrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is reported alongside the empty (whole server) service name.
const ServiceName = "catalog.Catalog"

type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthServer exposes grpc.health.v1.Health with a status derived from
// store pings.
type HealthServer struct {
	server   *googlegrpc.Server
	health   *health.Server
	store    Pinger
	interval time.Duration
	log      *logrus.Logger
}

func NewHealthServer(store Pinger, interval time.Duration, logger *logrus.Logger) *HealthServer {
	server := googlegrpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(server, healthSrv)
	reflection.Register(server)

	return &HealthServer{
		server:   server,
		health:   healthSrv,
		store:    store,
		interval: interval,
		log:      logger,
	}
}

func (h *HealthServer) Serve(lis net.Listener) error {
	h.log.Infof("gRPC health server listening on %s", lis.Addr())
	return h.server.Serve(lis)
}

// Check pings the store once and publishes the result.
func (h *HealthServer) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.store.PingContext(ctx); err != nil {
		h.log.Warnf("gRPC health: store ping failed: %v", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	return status
}

// Watch runs Check every interval until ctx is done.
func (h *HealthServer) Watch(ctx context.Context) {
	h.Check(ctx)
	if h.interval <= 0 {
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

func (h *HealthServer) GracefulStop() {
	h.health.Shutdown()
	h.server.GracefulStop()
	h.log.Info("gRPC health server gracefully stopped.")
}
