package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "carelink-api/api/care/v1"
	"carelink-api/internal/model"
	"carelink-api/internal/store"
)

func (h *Handler) ListProviders(ctx context.Context, req *pb.ListProvidersRequest) (*pb.ListProvidersResponse, error) {
	providers := h.store.Providers()
	out := make([]*pb.Provider, len(providers))
	for i, p := range providers {
		out[i] = &pb.Provider{
			Id:             p.ID,
			Name:           p.Name,
			Specialization: p.Specialization,
			Availability:   p.Availability,
		}
	}
	return &pb.ListProvidersResponse{Providers: out}, nil
}

// ListAvailableSlots resolves the provider's labels for the date and hides
// the ones an open appointment already holds.
func (h *Handler) ListAvailableSlots(ctx context.Context, req *pb.ListAvailableSlotsRequest) (*pb.ListAvailableSlotsResponse, error) {
	if req.ProviderId == "" || req.Date == "" {
		return &pb.ListAvailableSlotsResponse{Slots: []*pb.SlotOption{}}, nil
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	p, err := h.store.FindProvider(req.ProviderId)
	if errors.Is(err, store.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "provider not found")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := []*pb.SlotOption{}
	for _, o := range h.bookable(p, date) {
		out = append(out, &pb.SlotOption{Value: o, Label: o})
	}
	h.metrics.ObserveSlots(len(out))
	return &pb.ListAvailableSlotsResponse{Slots: out}, nil
}

func (h *Handler) bookable(p model.Provider, date model.Date) []string {
	var free []string
	for _, o := range h.slots.Resolve(p.Availability, date) {
		if !h.store.SlotTaken(p.ID, date, o.Value) {
			free = append(free, o.Value)
		}
	}
	return free
}
