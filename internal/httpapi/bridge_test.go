package httpapi

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	pb "carelink-api/api/care/v1"
	"carelink-api/internal/grpcweb"
	"carelink-api/internal/handler"
	"carelink-api/internal/middleware"
	"carelink-api/internal/server"
	"carelink-api/internal/storage"
	"carelink-api/internal/store"
)

// newStack wires router -> bridge -> grpc server over loopback TCP, the
// same topology the serve command runs.
func newStack(t *testing.T, rl *middleware.RateLimiter) http.Handler {
	t.Helper()
	st := store.New(storage.NewMemory(), zerolog.Nop(), nil)
	seed, err := store.DemoUsers(func(pw string) (string, error) {
		b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		return string(b), err
	})
	require.NoError(t, err)
	st.Init(context.Background(), seed)

	srv := server.New(handler.New(st, "secret", nil, nil), server.Options{Secret: "secret", Limiter: rl, Logger: zerolog.Nop()})
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	bridge, err := grpcweb.New(lis.Addr().String(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { bridge.Close() })

	return New(&Config{Logger: zerolog.Nop(), Bridge: bridge.Handler()})
}

func loginVia(t *testing.T, h http.Handler, header, client string) string {
	t.Helper()
	payload, err := json.Marshal(pb.LoginRequest{Email: "patient@carelink.dev", Password: "patient123"})
	require.NoError(t, err)
	body := make([]byte, 5, 5+len(payload))
	binary.BigEndian.PutUint32(body[1:5], uint32(len(payload)))
	body = append(body, payload...)

	req := httptest.NewRequest(http.MethodPost, "/"+pb.ServiceName+"/Login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/grpc-web+json")
	if header != "" {
		req.Header.Set(header, client)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestBridge_RateLimitPerProxiedClient(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 1)
	defer rl.Close()
	h := newStack(t, rl)

	tests := []struct {
		name, header, client string
		want                 string
	}{
		{"first client", "X-Forwarded-For", "198.51.100.1", "grpc-status:0"},
		{"second client has its own bucket", "X-Forwarded-For", "198.51.100.2", "grpc-status:0"},
		{"real ip header", "X-Real-IP", "198.51.100.3", "grpc-status:0"},
		{"first client again", "X-Forwarded-For", "198.51.100.1", "grpc-status:8"},
		{"same client via real ip", "X-Real-IP", "198.51.100.2", "grpc-status:8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, loginVia(t, h, tt.header, tt.client), tt.want)
		})
	}
}

func TestBridge_RateLimitDirectClient(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 1)
	defer rl.Close()
	h := newStack(t, rl)

	// httptest requests come from 192.0.2.1:1234
	assert.Contains(t, loginVia(t, h, "", ""), "grpc-status:0")
	assert.Contains(t, loginVia(t, h, "", ""), "grpc-status:8")
	assert.Contains(t, loginVia(t, h, "X-Forwarded-For", "198.51.100.9"), "grpc-status:0")
}
