package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"chatcast/domain/chat"

	sdkgrpc "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// GRPCServer exposes the standard grpc.health.v1 service so orchestrators
// can probe the server without HTTP.
type GRPCServer struct {
	log    *slog.Logger
	server *grpc.Server
	health *grpchealth.Server
}

func NewGRPCServer(log *slog.Logger) *GRPCServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(sdkgrpc.UnaryLoggingInterceptor(log)))
	health := grpchealth.NewServer()
	healthpb.RegisterHealthServer(server, health)
	return &GRPCServer{log: log, server: server, health: health}
}

// SetStatus maps the aggregated status on the overall ("") service.
// Degraded still serves.
func (g *GRPCServer) SetStatus(status chat.HealthStatus) {
	serving := healthpb.HealthCheckResponse_SERVING
	if status == chat.Unhealthy {
		serving = healthpb.HealthCheckResponse_NOT_SERVING
	}
	g.health.SetServingStatus("", serving)
}

// Serve blocks until ctx is cancelled or the listener fails.
func (g *GRPCServer) Serve(ctx context.Context, listener net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		g.log.Info("Starting gRPC health server", "address", listener.Addr().String())
		if err := g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC health server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		g.health.Shutdown()
		g.server.GracefulStop()
		return nil
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return err
	}
}
