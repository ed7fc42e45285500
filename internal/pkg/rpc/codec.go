// Package rpc holds the gRPC codecs used to talk to the identity service:
// protobuf by default, JSON for gateways that transcode.
package rpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype for JSON payloads
const CodecName = "json"

// JSONCodec marshals gRPC messages as JSON
type JSONCodec struct{}

func (JSONCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(ProtoCodec{fallback: encoding.GetCodec(ProtoCodecName)})
	encoding.RegisterCodec(JSONCodec{})
}
