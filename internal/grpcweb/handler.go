package grpcweb

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// maxBody caps a single grpc-web request.
const maxBody = 1 << 20

// Bridge translates gRPC-Web (browser HTTP/1.1) → native gRPC. Payloads are
// JSON and pass through untouched; the server's json codec decodes them.
type Bridge struct {
	conn *grpc.ClientConn
	log  zerolog.Logger
}

// New dials the gRPC server at target (e.g. "localhost:50051"). Extra dial
// options are applied after the default insecure transport.
func New(target string, log zerolog.Logger, opts ...grpc.DialOption) (*Bridge, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpcweb dial: %w", err)
	}
	return &Bridge{conn: conn, log: log}, nil
}

func (b *Bridge) Close() error { return b.conn.Close() }

// Handler returns an http.Handler that translates gRPC-Web → gRPC. The
// request path is the full gRPC method name.
func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, X-Grpc-Web, X-User-Agent, Authorization, x-grpc-web")
		w.Header().Set("Access-Control-Expose-Headers",
			"Grpc-Status, Grpc-Message, Grpc-Status-Details-Bin, grpc-status, grpc-message")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !acceptable(r.Header.Get("Content-Type")) {
			http.Error(w, "expected application/grpc-web+json", http.StatusUnsupportedMediaType)
			return
		}

		b.log.Debug().Str("path", r.URL.Path).Msg("grpc-web")
		b.forward(w, r)
	})
}

// acceptable admits grpc-web carrying JSON. A bare "application/grpc-web"
// is taken as JSON too since this server has no protobuf encoding.
func acceptable(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(strings.SplitN(ct, ";", 2)[0]))
	return ct == "application/grpc-web" || ct == "application/grpc-web+json"
}

func (b *Bridge) forward(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody+5))
	if err != nil {
		writeError(w, codes.Internal, "read body failed")
		return
	}
	payload, err := unframe(body)
	if err != nil {
		writeError(w, codes.InvalidArgument, err.Error())
		return
	}

	// forward metadata
	md := metadata.MD{}
	if vals := r.Header.Values("Authorization"); len(vals) > 0 {
		md.Set("authorization", vals...)
	}
	if host := remoteHost(r.RemoteAddr); host != "" {
		md.Set("x-forwarded-for", host)
	}
	ctx := metadata.NewOutgoingContext(r.Context(), md)

	// invoke gRPC method using raw codec (pass-through bytes)
	resp := &rawMsg{}
	err = b.conn.Invoke(ctx, r.URL.Path, &rawMsg{data: payload}, resp, grpc.ForceCodec(rawCodec{}))
	if err != nil {
		st := status.Convert(err)
		b.log.Debug().Str("path", r.URL.Path).Str("code", st.Code().String()).Msg("grpc-web error")
		writeError(w, st.Code(), st.Message())
		return
	}

	writeSuccess(w, resp.data)
}

// remoteHost returns the client IP from RemoteAddr. A proxy-aware router
// may already have rewritten it to a bare IP with no port.
func remoteHost(addr string) string {
	if ip := net.ParseIP(addr); ip != nil {
		return ip.String()
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return ""
}

// unframe strips the grpc-web data frame: 1-byte flag + 4-byte big-endian
// length + message.
func unframe(body []byte) ([]byte, error) {
	if len(body) < 5 {
		return nil, fmt.Errorf("body too short")
	}
	if body[0]&0x80 != 0 {
		return nil, fmt.Errorf("unexpected trailer frame")
	}
	msgLen := binary.BigEndian.Uint32(body[1:5])
	if msgLen > maxBody {
		return nil, fmt.Errorf("message too large")
	}
	if int(msgLen)+5 > len(body) {
		return nil, fmt.Errorf("incomplete frame")
	}
	return body[5 : 5+msgLen], nil
}

// rawMsg wraps raw JSON bytes.
type rawMsg struct{ data []byte }

// rawCodec passes bytes through without marshal/unmarshal. It is named
// "json" so the server picks its json codec for the call.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	return v.(*rawMsg).data, nil
}
func (rawCodec) Unmarshal(data []byte, v any) error {
	m := v.(*rawMsg)
	m.data = append([]byte(nil), data...)
	return nil
}
func (rawCodec) Name() string { return "json" }

func frame(flag byte, data []byte) []byte {
	f := make([]byte, 5+len(data))
	f[0] = flag
	binary.BigEndian.PutUint32(f[1:5], uint32(len(data)))
	copy(f[5:], data)
	return f
}

func trailer(code codes.Code, msg string) []byte {
	t := fmt.Sprintf("grpc-status:%d\r\n", code)
	if msg != "" {
		t += "grpc-message:" + url.PathEscape(msg) + "\r\n"
	}
	return frame(0x80, []byte(t))
}

func writeError(w http.ResponseWriter, code codes.Code, msg string) {
	w.Header().Set("Content-Type", "application/grpc-web+json")
	w.Header().Set("Grpc-Status", fmt.Sprint(int(code)))
	w.Header().Set("Grpc-Message", url.PathEscape(msg))
	w.WriteHeader(http.StatusOK)
	w.Write(trailer(code, msg))
}

func writeSuccess(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/grpc-web+json")
	w.WriteHeader(http.StatusOK)
	w.Write(frame(0x00, data))
	w.Write(trailer(codes.OK, ""))
}
