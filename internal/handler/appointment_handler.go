package handler

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "carelink-api/api/care/v1"
	"carelink-api/internal/availability"
	"carelink-api/internal/middleware"
	"carelink-api/internal/model"
	"carelink-api/internal/store"
)

func (h *Handler) CreateAppointment(ctx context.Context, req *pb.CreateAppointmentRequest) (*pb.CreateAppointmentResponse, error) {
	p, err := patient(ctx)
	if err != nil {
		return nil, err
	}
	if req.ProviderId == "" || req.Time == "" {
		return nil, status.Error(codes.InvalidArgument, "provider and time required")
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if date.Before(model.DateOf(h.slots.Now())) {
		return nil, status.Error(codes.InvalidArgument, "date is in the past")
	}

	provider, err := h.store.FindProvider(req.ProviderId)
	if errors.Is(err, store.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "provider not found")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	// the booked label must be one the resolver offers right now
	if !availability.Contains(h.slots.Resolve(provider.Availability, date), req.Time) {
		return nil, status.Error(codes.InvalidArgument, "time not available on that date")
	}

	apt, err := h.store.AddAppointment(ctx, model.Appointment{
		PatientID:  p.UserID,
		ProviderID: provider.ID,
		Date:       date,
		Time:       req.Time,
		Status:     model.StatusPending,
		Notes:      req.Notes,
	})
	if errors.Is(err, store.ErrSlotTaken) {
		return nil, status.Error(codes.AlreadyExists, "slot already booked")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.CreateAppointmentResponse{Appointment: toProto(&apt)}, nil
}

func (h *Handler) ListAppointments(ctx context.Context, req *pb.ListAppointmentsRequest) (*pb.ListAppointmentsResponse, error) {
	p, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	want := model.AppointmentStatus(req.Status)
	if want != "" && !want.Valid() {
		return nil, status.Error(codes.InvalidArgument, "unknown status")
	}

	out := []*pb.Appointment{}
	for _, a := range h.store.AppointmentsFor(p.UserID, p.Role) {
		if want != "" && a.Status != want {
			continue
		}
		out = append(out, toProto(&a))
	}
	return &pb.ListAppointmentsResponse{Appointments: out}, nil
}

func (h *Handler) GetAppointment(ctx context.Context, req *pb.GetAppointmentRequest) (*pb.GetAppointmentResponse, error) {
	p, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}

	apt, err := h.store.FindAppointment(req.Id)
	// ownership: return 404 not 403 to hide existence
	if err != nil || !participant(apt, p) {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return &pb.GetAppointmentResponse{Appointment: toProto(&apt)}, nil
}

func (h *Handler) UpdateAppointmentStatus(ctx context.Context, req *pb.UpdateAppointmentStatusRequest) (*pb.UpdateAppointmentStatusResponse, error) {
	p, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	to := model.AppointmentStatus(req.Status)
	if !to.Valid() || to == model.StatusPending {
		return nil, status.Error(codes.InvalidArgument, "status must be Confirmed, Rejected or Cancelled")
	}

	apt, err := h.store.UpdateAppointment(ctx, req.Id, func(a *model.Appointment) error {
		if !participant(*a, p) {
			return status.Error(codes.NotFound, "not found")
		}
		if err := transition(*a, p, to); err != nil {
			return err
		}
		a.Status = to
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "not found")
	}
	if err != nil {
		return nil, err
	}
	return &pb.UpdateAppointmentStatusResponse{Appointment: toProto(&apt)}, nil
}

func participant(a model.Appointment, p middleware.Principal) bool {
	switch p.Role {
	case model.RolePatient:
		return a.PatientID == p.UserID
	case model.RoleDoctor:
		return a.ProviderID == p.UserID
	}
	return false
}

// transition enforces the appointment lifecycle:
//
//	Pending   -> Confirmed | Rejected   (provider only)
//	Pending   -> Cancelled              (either side)
//	Confirmed -> Cancelled              (either side)
func transition(a model.Appointment, p middleware.Principal, to model.AppointmentStatus) error {
	switch to {
	case model.StatusConfirmed, model.StatusRejected:
		if p.Role != model.RoleDoctor {
			return status.Error(codes.PermissionDenied, "only the provider can confirm or reject")
		}
		if a.Status != model.StatusPending {
			return status.Errorf(codes.FailedPrecondition, "appointment is %s", a.Status)
		}
	case model.StatusCancelled:
		if !a.Status.Open() {
			return status.Errorf(codes.FailedPrecondition, "appointment is %s", a.Status)
		}
	}
	return nil
}

func toProto(a *model.Appointment) *pb.Appointment {
	p := &pb.Appointment{
		Id:         a.ID,
		PatientId:  a.PatientID,
		ProviderId: a.ProviderID,
		Date:       a.Date.String(),
		Time:       a.Time,
		Status:     string(a.Status),
		Notes:      a.Notes,
	}
	if !a.CreatedAt.IsZero() {
		p.CreatedAt = a.CreatedAt.Format(time.RFC3339)
	}
	if !a.UpdatedAt.IsZero() {
		p.UpdatedAt = a.UpdatedAt.Format(time.RFC3339)
	}
	return p
}
