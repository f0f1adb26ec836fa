// Package server assembles the gRPC server: interceptor chain, the care
// service and the standard health service.
package server

import (
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "carelink-api/api/care/v1"
	"carelink-api/internal/metrics"
	"carelink-api/internal/middleware"
)

type Options struct {
	Secret  string
	Limiter *middleware.RateLimiter
	Logger  zerolog.Logger
	Metrics *metrics.Metrics
}

// New returns a server with svc registered. The health service reports
// SERVING for the care service and the server as a whole.
func New(svc pb.CareServiceServer, o Options) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		middleware.Logging(o.Logger),
		middleware.Instrument(o.Metrics),
	}
	if o.Limiter != nil {
		chain = append(chain, middleware.RateLimit(o.Limiter))
	}
	chain = append(chain, middleware.Auth(o.Secret))

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(chain...))
	pb.RegisterCareServiceServer(srv, svc)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv
}
