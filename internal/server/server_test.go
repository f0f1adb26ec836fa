package server_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "carelink-api/api/care/v1"
	"carelink-api/internal/availability"
	"carelink-api/internal/handler"
	"carelink-api/internal/middleware"
	"carelink-api/internal/server"
	"carelink-api/internal/storage"
	"carelink-api/internal/store"
)

const secret = "test-secret"

func start(t *testing.T) *grpc.ClientConn {
	t.Helper()
	st := store.New(storage.NewMemory(), zerolog.Nop(), nil)
	seed, err := store.DemoUsers(func(pw string) (string, error) {
		b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		return string(b), err
	})
	require.NoError(t, err)
	st.Init(context.Background(), seed)

	rl := middleware.NewRateLimiter(100, 100)
	t.Cleanup(rl.Close)
	srv := server.New(handler.New(st, secret, availability.NewResolver(nil), nil), server.Options{
		Secret:  secret,
		Limiter: rl,
		Logger:  zerolog.Nop(),
	})

	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestEndToEnd(t *testing.T) {
	conn := start(t)
	client := pb.NewCareServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	providers, err := client.ListProviders(ctx, &pb.ListProvidersRequest{})
	require.NoError(t, err)
	assert.Len(t, providers.Providers, 3)

	_, err = client.ListAppointments(ctx, &pb.ListAppointmentsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	login, err := client.Login(ctx, &pb.LoginRequest{Email: "patient@carelink.dev", Password: "patient123"})
	require.NoError(t, err)
	authed := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+login.Token)

	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	slots, err := client.ListAvailableSlots(authed, &pb.ListAvailableSlotsRequest{ProviderId: "doc-2", Date: future})
	require.NoError(t, err)
	require.Len(t, slots.Slots, 4)

	created, err := client.CreateAppointment(authed, &pb.CreateAppointmentRequest{
		ProviderId: "doc-2", Date: future, Time: slots.Slots[0].Value,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pending", created.Appointment.Status)

	list, err := client.ListAppointments(authed, &pb.ListAppointmentsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Appointments, 1)
	assert.Equal(t, created.Appointment.Id, list.Appointments[0].Id)
}

func TestHealth(t *testing.T) {
	conn := start(t)
	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}
