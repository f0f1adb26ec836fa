package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "carelink-api/api/care/v1"
	"carelink-api/internal/auth"
	"carelink-api/internal/model"
)

type ctxKey struct{}

// Principal is the authenticated caller of an RPC.
type Principal struct {
	UserID string
	Role   model.Role
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}

// skip auth for these
var open = map[string]bool{
	pb.CareService_Register_FullMethodName:      true,
	pb.CareService_Login_FullMethodName:         true,
	pb.CareService_Refresh_FullMethodName:       true,
	pb.CareService_ListProviders_FullMethodName: true,
	"/grpc.health.v1.Health/Check":              true,
}

func Auth(secret string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if open[info.FullMethod] {
			return next(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		// token from Authorization: Bearer <jwt>
		raw := ""
		if vals := md.Get("authorization"); len(vals) > 0 {
			raw = strings.TrimPrefix(vals[0], "Bearer ")
		}
		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no token")
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}

		ctx = WithPrincipal(ctx, Principal{UserID: claims.UserID, Role: model.Role(claims.Role)})
		return next(ctx, req)
	}
}
