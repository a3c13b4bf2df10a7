// Package v1alpha1 defines the pvmhub gRPC API: request and response messages,
// service descriptors, clients, and the JSON codec they travel with.
//
// pvmhub.proto is the wire contract. Messages are plain Go structs encoded in
// its proto3 JSON mapping. Clients select the codec with
// grpc.CallContentSubtype(CodecName); the server picks it up from the request
// content type.
package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content subtype of the JSON codec
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec marshals messages as JSON. Protobuf messages, such as the health
// service's, go through protojson.
type Codec struct{}

// Marshal encodes v
func (Codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

// Unmarshal decodes data into v
func (Codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

// Name returns CodecName
func (Codec) Name() string {
	return CodecName
}
