package handler

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "carelink-api/api/care/v1"
	"carelink-api/internal/healthlog"
	"carelink-api/internal/model"
	"carelink-api/internal/store"
)

func (h *Handler) AddVital(ctx context.Context, req *pb.AddVitalRequest) (*pb.AddVitalResponse, error) {
	p, err := patient(ctx)
	if err != nil {
		return nil, err
	}
	v, err := h.vital(p.UserID, req.Date, req.Type, req.Value, req.Unit, req.Status)
	if err != nil {
		return nil, err
	}
	v = h.store.AddVital(ctx, v)
	return &pb.AddVitalResponse{Vital: vitalProto(v)}, nil
}

func (h *Handler) UpdateVital(ctx context.Context, req *pb.UpdateVitalRequest) (*pb.UpdateVitalResponse, error) {
	p, err := patient(ctx)
	if err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	v, err := h.vital(p.UserID, req.Date, req.Type, req.Value, req.Unit, req.Status)
	if err != nil {
		return nil, err
	}
	v.ID = req.Id
	if err := h.store.UpdateVital(ctx, v); errors.Is(err, store.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "not found")
	} else if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.UpdateVitalResponse{Vital: vitalProto(v)}, nil
}

func (h *Handler) DeleteVital(ctx context.Context, req *pb.DeleteVitalRequest) (*pb.DeleteVitalResponse, error) {
	p, err := patient(ctx)
	if err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	if err := h.store.DeleteVital(ctx, p.UserID, req.Id); err != nil {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return &pb.DeleteVitalResponse{}, nil
}

func (h *Handler) ListVitals(ctx context.Context, req *pb.ListVitalsRequest) (*pb.ListVitalsResponse, error) {
	p, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	vitals := healthlog.FilterVitals(h.store.VitalsFor(p.UserID), healthlog.VitalFilter{
		Type:   req.Type,
		From:   req.From,
		To:     req.To,
		Search: req.Search,
	})
	out := make([]*pb.Vital, len(vitals))
	for i, v := range vitals {
		out[i] = vitalProto(v)
	}
	return &pb.ListVitalsResponse{Vitals: out}, nil
}

// vital validates a reading and settles its status.
func (h *Handler) vital(patientID, date, typ, value, unit, selection string) (model.Vital, error) {
	d, err := parseDate("date", date)
	if err != nil {
		return model.Vital{}, err
	}
	typ, value = strings.TrimSpace(typ), strings.TrimSpace(value)
	if typ == "" || value == "" {
		return model.Vital{}, status.Error(codes.InvalidArgument, "type and value required")
	}
	st := healthlog.ResolveStatus(selection, typ, value)
	h.metrics.ObserveClassification(string(st))
	return model.Vital{
		PatientID: patientID,
		Date:      d,
		Type:      typ,
		Value:     value,
		Unit:      strings.TrimSpace(unit),
		Status:    st,
	}, nil
}

func vitalProto(v model.Vital) *pb.Vital {
	return &pb.Vital{
		Id:     v.ID,
		Date:   v.Date.String(),
		Type:   v.Type,
		Value:  v.Value,
		Unit:   v.Unit,
		Status: string(v.Status),
	}
}

func (h *Handler) AddSymptom(ctx context.Context, req *pb.AddSymptomRequest) (*pb.AddSymptomResponse, error) {
	p, err := patient(ctx)
	if err != nil {
		return nil, err
	}
	d, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Symptom)
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "symptom required")
	}
	sev := model.Severity(strings.ToLower(req.Severity))
	if sev == "" {
		sev = model.SeverityMild
	}
	if !sev.Valid() {
		return nil, status.Error(codes.InvalidArgument, "severity must be mild, moderate or severe")
	}

	sym := h.store.AddSymptom(ctx, model.Symptom{
		PatientID: p.UserID,
		Date:      d,
		Name:      name,
		Severity:  sev,
		Notes:     req.Notes,
	})
	return &pb.AddSymptomResponse{Symptom: symptomProto(sym)}, nil
}

func (h *Handler) DeleteSymptom(ctx context.Context, req *pb.DeleteSymptomRequest) (*pb.DeleteSymptomResponse, error) {
	p, err := patient(ctx)
	if err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	if err := h.store.DeleteSymptom(ctx, p.UserID, req.Id); err != nil {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return &pb.DeleteSymptomResponse{}, nil
}

func (h *Handler) ListSymptoms(ctx context.Context, req *pb.ListSymptomsRequest) (*pb.ListSymptomsResponse, error) {
	p, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	symptoms := healthlog.FilterSymptoms(h.store.SymptomsFor(p.UserID), healthlog.SymptomFilter{
		Severity: req.Severity,
		From:     req.From,
		To:       req.To,
		Search:   req.Search,
	})
	out := make([]*pb.Symptom, len(symptoms))
	for i, s := range symptoms {
		out[i] = symptomProto(s)
	}
	return &pb.ListSymptomsResponse{Symptoms: out}, nil
}

func symptomProto(s model.Symptom) *pb.Symptom {
	return &pb.Symptom{
		Id:       s.ID,
		Date:     s.Date.String(),
		Symptom:  s.Name,
		Severity: string(s.Severity),
		Notes:    s.Notes,
	}
}

// HealthSummary always covers the caller's whole log.
func (h *Handler) HealthSummary(ctx context.Context, req *pb.HealthSummaryRequest) (*pb.HealthSummaryResponse, error) {
	p, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	s := healthlog.Summarize(h.store.VitalsFor(p.UserID), h.store.SymptomsFor(p.UserID))
	return &pb.HealthSummaryResponse{
		TotalEntries:    int32(s.TotalEntries),
		AbnormalVitals:  int32(s.AbnormalVitals),
		LastEntryDate:   s.LastEntryDate.String(),
		MostCommonVital: s.MostCommonVital,
	}, nil
}
