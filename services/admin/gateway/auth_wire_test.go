package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/piresc/admin-gateway/internal/pkg/rpc"
)

// authFile mirrors api/proto/auth.proto
func authFile(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()

	str := descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
	boolean := descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()
	field := func(name string, num int32, typ *descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(name),
			JsonName: proto.String(name),
			Number:   proto.Int32(num),
			Type:     typ,
			Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		}
	}
	message := func(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
		return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
	}

	fd, err := protodesc.NewFile(&descriptorpb.FileDescriptorProto{
		Name:    proto.String("auth.proto"),
		Package: proto.String("auth"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			message("LoginRequest", field("email", 1, str), field("deviceId", 2, str), field("role", 3, str), field("userId", 4, str)),
			message("LoginResponse", field("accessToken", 1, str), field("refreshToken", 2, str)),
			message("AccessTokenRequest", field("refreshToken", 1, str)),
			message("AccessTokenResponse", field("accessToken", 1, str)),
			message("LogoutRequest", field("accessToken", 1, str)),
			message("LogoutResponse", field("success", 1, boolean)),
			message("ValidateTokenRequest", field("accessToken", 1, str)),
			message("ValidateTokenResponse", field("isValid", 1, boolean), field("admin", 2, str)),
		},
	}, new(protoregistry.Files))
	require.NoError(t, err)
	return fd
}

func dynamicMessage(t *testing.T, fd protoreflect.FileDescriptor, name string, values map[string]interface{}) *dynamicpb.Message {
	t.Helper()
	md := fd.Messages().ByName(protoreflect.Name(name))
	require.NotNil(t, md, name)

	msg := dynamicpb.NewMessage(md)
	for fieldName, v := range values {
		f := md.Fields().ByName(protoreflect.Name(fieldName))
		require.NotNil(t, f, fieldName)
		msg.Set(f, protoreflect.ValueOf(v))
	}
	return msg
}

func TestAuthWire_EncodesLikeProtobuf(t *testing.T) {
	fd := authFile(t)

	tests := []struct {
		name    string
		message string
		ours    rpc.WireMessage
		want    map[string]interface{}
	}{
		{
			name:    "GetToken request",
			message: "LoginRequest",
			ours:    &GetTokenRequest{Email: "root@example.com", DeviceID: "android", Role: "admin", UserID: "admin-1"},
			want:    map[string]interface{}{"email": "root@example.com", "deviceId": "android", "role": "admin", "userId": "admin-1"},
		},
		{
			name:    "AccessToken request",
			message: "AccessTokenRequest",
			ours:    &AccessTokenRequest{RefreshToken: "rt"},
			want:    map[string]interface{}{"refreshToken": "rt"},
		},
		{
			name:    "Logout request",
			message: "LogoutRequest",
			ours:    &LogoutRequest{AccessToken: "at"},
			want:    map[string]interface{}{"accessToken": "at"},
		},
		{
			name:    "ValidateToken request",
			message: "ValidateTokenRequest",
			ours:    &ValidateTokenRequest{AccessToken: "at"},
			want:    map[string]interface{}{"accessToken": "at"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.ours.AppendWire(nil)

			got := dynamicMessage(t, fd, tt.message, nil)
			require.NoError(t, proto.Unmarshal(data, got))

			want := dynamicMessage(t, fd, tt.message, tt.want)
			assert.True(t, proto.Equal(want, got), "got %v", got)
		})
	}
}

func TestAuthWire_DecodesProtobuf(t *testing.T) {
	fd := authFile(t)

	marshal := func(name string, values map[string]interface{}) []byte {
		data, err := proto.Marshal(dynamicMessage(t, fd, name, values))
		require.NoError(t, err)
		return data
	}

	var login GetTokenResponse
	require.NoError(t, login.ReadWire(marshal("LoginResponse", map[string]interface{}{"accessToken": "at", "refreshToken": "rt"})))
	assert.Equal(t, GetTokenResponse{AccessToken: "at", RefreshToken: "rt"}, login)

	var access AccessTokenResponse
	require.NoError(t, access.ReadWire(marshal("AccessTokenResponse", map[string]interface{}{"accessToken": "fresh"})))
	assert.Equal(t, "fresh", access.AccessToken)

	var logout LogoutResponse
	require.NoError(t, logout.ReadWire(marshal("LogoutResponse", map[string]interface{}{"success": true})))
	assert.True(t, logout.Success)

	var valid ValidateTokenResponse
	require.NoError(t, valid.ReadWire(marshal("ValidateTokenResponse", map[string]interface{}{"isValid": true, "admin": "admin-1"})))
	assert.Equal(t, ValidateTokenResponse{IsValid: true, Admin: "admin-1"}, valid)

	// proto3 omits defaults entirely
	var invalid ValidateTokenResponse
	require.NoError(t, invalid.ReadWire(marshal("ValidateTokenResponse", nil)))
	assert.Equal(t, ValidateTokenResponse{}, invalid)
}

func TestAuthWire_WrongWireType(t *testing.T) {
	fd := authFile(t)
	// LogoutRequest field 1 is a string, LogoutResponse field 1 a bool
	data, err := proto.Marshal(dynamicMessage(t, fd, "LogoutRequest", map[string]interface{}{"accessToken": "at"}))
	require.NoError(t, err)

	var resp LogoutResponse
	assert.Error(t, resp.ReadWire(data))
}
