package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "carelink-api/api/care/v1"
	"carelink-api/internal/auth"
	"carelink-api/internal/availability"
	"carelink-api/internal/model"
	"carelink-api/internal/store"
)

func (h *Handler) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "all fields required")
	}
	if len(req.Password) < 8 {
		return nil, status.Error(codes.InvalidArgument, "password too short")
	}

	role := model.Role(strings.ToLower(req.Role))
	if role == "" {
		role = model.RolePatient
	}
	profile, err := decodeProfile(role, req.Profile)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	u, err := h.store.AddUser(ctx, model.User{
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Name:         req.Name,
		Profile:      profile,
	})
	if errors.Is(err, store.ErrDuplicateEmail) {
		// don't reveal which field clashed
		return nil, status.Error(codes.AlreadyExists, "registration failed")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	tok, refresh, err := h.issue(u)
	if err != nil {
		return nil, err
	}
	return &pb.RegisterResponse{UserId: u.ID, Token: tok, RefreshToken: refresh}, nil
}

// decodeProfile reads the role-specific profile. Fields belonging to
// another role are rejected.
func decodeProfile(role model.Role, raw json.RawMessage) (model.Profile, error) {
	p, err := model.NewProfile(role)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "role must be patient, doctor or pharmacist")
	}
	if len(raw) > 0 && string(raw) != "null" {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(p); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid %s profile", role)
		}
	}
	if d, ok := p.(*model.DoctorProfile); ok {
		for _, l := range d.Availability {
			if _, ok := availability.ParseLabel(l); !ok {
				return nil, status.Errorf(codes.InvalidArgument, "bad availability label %q", l)
			}
		}
	}
	return p, nil
}

func (h *Handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password required")
	}

	u, err := h.store.FindUserByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	tok, refresh, err := h.issue(u)
	if err != nil {
		return nil, err
	}
	return &pb.LoginResponse{
		Token:        tok,
		RefreshToken: refresh,
		UserId:       u.ID,
		Name:         u.Name,
		Role:         string(u.Role()),
	}, nil
}

func (h *Handler) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.RefreshResponse, error) {
	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token required")
	}

	rt, err := h.store.GetRefreshTokenByHash(auth.HashRefreshToken(req.RefreshToken))
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}
	if rt.Revoked {
		// reuse of a rotated token: assume theft, kill the whole family
		h.store.RevokeAllRefreshTokens(rt.UserID)
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}
	if time.Now().After(rt.ExpiresAt) {
		return nil, status.Error(codes.Unauthenticated, "refresh token expired")
	}

	u, err := h.store.FindUserByID(rt.UserID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	if _, err := h.store.RotateRefreshToken(rt.ID, u.ID, hash, time.Now().Add(auth.RefreshTTL)); err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}
	tok, err := auth.MakeToken(u.ID, string(u.Role()), h.secret)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.RefreshResponse{Token: tok, RefreshToken: raw}, nil
}

// issue mints an access token and a fresh refresh token for u.
func (h *Handler) issue(u model.User) (access, refresh string, err error) {
	access, err = auth.MakeToken(u.ID, string(u.Role()), h.secret)
	if err != nil {
		return "", "", status.Error(codes.Internal, "internal error")
	}
	refresh, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return "", "", status.Error(codes.Internal, "internal error")
	}
	h.store.CreateRefreshToken(u.ID, hash, time.Now().Add(auth.RefreshTTL))
	return access, refresh, nil
}
