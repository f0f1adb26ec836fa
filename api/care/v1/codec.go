package carev1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Name is the gRPC content-subtype of the codec: application/grpc+json.
const Name = "json"

// codec encodes the plain-struct messages of this package as JSON. Protobuf
// messages (health checks, reflection) go through protojson so the same
// subtype works for every service on the server.
type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, m)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (codec) Name() string { return Name }

func init() {
	encoding.RegisterCodec(codec{})
}
