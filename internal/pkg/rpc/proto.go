package rpc

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	grpcproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/protobuf/encoding/protowire"
)

// ProtoCodecName is the standard gRPC content-subtype
const ProtoCodecName = grpcproto.Name

// WireMessage is a proto3 message mapped by hand onto protobuf wire format
type WireMessage interface {
	AppendWire(b []byte) []byte
	ReadWire(b []byte) error
}

// ProtoCodec encodes WireMessage values as protobuf and hands every other
// value to the stock proto codec
type ProtoCodec struct {
	fallback encoding.Codec
}

func (c ProtoCodec) Marshal(v interface{}) ([]byte, error) {
	if m, ok := v.(WireMessage); ok {
		return m.AppendWire(nil), nil
	}
	if c.fallback == nil {
		return nil, fmt.Errorf("rpc: cannot marshal %T as protobuf", v)
	}
	return c.fallback.Marshal(v)
}

func (c ProtoCodec) Unmarshal(data []byte, v interface{}) error {
	if m, ok := v.(WireMessage); ok {
		return m.ReadWire(data)
	}
	if c.fallback == nil {
		return fmt.Errorf("rpc: cannot unmarshal protobuf into %T", v)
	}
	return c.fallback.Unmarshal(data, v)
}

func (ProtoCodec) Name() string {
	return ProtoCodecName
}

// AppendString appends a string field, omitting the proto3 default
func AppendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// AppendBool appends a bool field, omitting the proto3 default
func AppendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

// Field is one decoded field of a message
type Field struct {
	Num    protowire.Number
	Type   protowire.Type
	bytes  []byte
	varint uint64
}

// AsString reads a length-delimited field as a string
func (f Field) AsString() (string, error) {
	if f.Type != protowire.BytesType {
		return "", fmt.Errorf("rpc: field %d has wire type %d, want bytes", f.Num, f.Type)
	}
	return string(f.bytes), nil
}

// AsBool reads a varint field as a bool
func (f Field) AsBool() (bool, error) {
	if f.Type != protowire.VarintType {
		return false, fmt.Errorf("rpc: field %d has wire type %d, want varint", f.Num, f.Type)
	}
	return protowire.DecodeBool(f.varint), nil
}

// ReadFields calls fn for each field in b. Callers ignore numbers they do
// not know, which keeps newer peers compatible.
func ReadFields(b []byte, fn func(Field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := Field{Num: num, Type: typ}
		switch typ {
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}
