package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "carelink-api/api/care/v1"
	"carelink-api/internal/availability"
	"carelink-api/internal/metrics"
	"carelink-api/internal/middleware"
	"carelink-api/internal/model"
	"carelink-api/internal/store"
)

type Handler struct {
	pb.UnimplementedCareServiceServer
	store   *store.Store
	secret  string
	slots   *availability.Resolver
	metrics *metrics.Metrics
}

func New(st *store.Store, secret string, slots *availability.Resolver, m *metrics.Metrics) *Handler {
	if slots == nil {
		slots = availability.NewResolver(nil)
	}
	return &Handler{store: st, secret: secret, slots: slots, metrics: m}
}

func caller(ctx context.Context) (middleware.Principal, error) {
	p, ok := middleware.PrincipalFrom(ctx)
	if !ok || p.UserID == "" {
		return middleware.Principal{}, status.Error(codes.Unauthenticated, "not signed in")
	}
	return p, nil
}

func patient(ctx context.Context) (middleware.Principal, error) {
	p, err := caller(ctx)
	if err != nil {
		return p, err
	}
	if p.Role != model.RolePatient {
		return p, status.Error(codes.PermissionDenied, "patients only")
	}
	return p, nil
}

// parseDate accepts only the stored YYYY-MM-DD form.
func parseDate(field, s string) (model.Date, error) {
	if s == "" {
		return model.Date{}, status.Errorf(codes.InvalidArgument, "%s required", field)
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, status.Errorf(codes.InvalidArgument, "%s must be YYYY-MM-DD", field)
	}
	return d, nil
}
