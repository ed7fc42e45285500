package gateway

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/piresc/admin-gateway/internal/pkg/models"
	"github.com/piresc/admin-gateway/internal/pkg/rpc"
)

type authService interface {
	GetToken(context.Context, *GetTokenRequest) (*GetTokenResponse, error)
	AccessToken(context.Context, *AccessTokenRequest) (*AccessTokenResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	ValidateToken(context.Context, *ValidateTokenRequest) (*ValidateTokenResponse, error)
}

type fakeAuthService struct {
	lastGetToken *GetTokenRequest
	delay        time.Duration
}

func (f *fakeAuthService) GetToken(ctx context.Context, req *GetTokenRequest) (*GetTokenResponse, error) {
	f.lastGetToken = req
	if req.Email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	return &GetTokenResponse{AccessToken: "access-" + req.UserID, RefreshToken: "refresh-" + req.UserID}, nil
}

func (f *fakeAuthService) AccessToken(ctx context.Context, req *AccessTokenRequest) (*AccessTokenResponse, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if req.RefreshToken != "good-refresh" {
		return nil, status.Error(codes.Unauthenticated, "refresh token rejected")
	}
	return &AccessTokenResponse{AccessToken: "fresh-access"}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, req *LogoutRequest) (*LogoutResponse, error) {
	return &LogoutResponse{Success: req.AccessToken == "live-token"}, nil
}

func (f *fakeAuthService) ValidateToken(ctx context.Context, req *ValidateTokenRequest) (*ValidateTokenResponse, error) {
	if req.AccessToken == "live-token" {
		return &ValidateTokenResponse{IsValid: true, Admin: "admin-1"}, nil
	}
	return &ValidateTokenResponse{IsValid: false}, nil
}

func unaryHandler[Req any, Resp any](call func(authService, context.Context, *Req) (*Resp, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		return call(srv.(authService), ctx, in)
	}
}

var authServiceDesc = grpc.ServiceDesc{
	ServiceName: "auth.AuthService",
	HandlerType: (*authService)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetToken", Handler: unaryHandler(authService.GetToken)},
		{MethodName: "AccessToken", Handler: unaryHandler(authService.AccessToken)},
		{MethodName: "Logout", Handler: unaryHandler(authService.Logout)},
		{MethodName: "ValidateToken", Handler: unaryHandler(authService.ValidateToken)},
	},
	Metadata: "auth.proto",
}

func setupIdentityTest(t *testing.T, svc *fakeAuthService, timeout time.Duration) *IdentityClient {
	t.Helper()
	return setupIdentityTestWithCodec(t, svc, timeout, "")
}

func setupIdentityTestWithCodec(t *testing.T, svc *fakeAuthService, timeout time.Duration, codec string) *IdentityClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	srv.RegisterService(&authServiceDesc, svc)
	go func() {
		_ = srv.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		srv.Stop()
	})

	return NewIdentityClientFromConn(conn, "bufnet", timeout, codec)
}

func TestIdentityClient_IssueTokens(t *testing.T) {
	svc := &fakeAuthService{}
	client := setupIdentityTest(t, svc, time.Second)

	pair, err := client.IssueTokens(context.Background(), "admin-1", "android", "admin", "root@example.com")

	require.NoError(t, err)
	assert.Equal(t, "access-admin-1", pair.AccessToken)
	assert.Equal(t, "refresh-admin-1", pair.RefreshToken)
	require.NotNil(t, svc.lastGetToken)
	assert.Equal(t, "android", svc.lastGetToken.DeviceID)
	assert.Equal(t, "admin", svc.lastGetToken.Role)
	assert.Equal(t, "root@example.com", svc.lastGetToken.Email)
}

func TestIdentityClient_IssueTokensRejected(t *testing.T) {
	client := setupIdentityTest(t, &fakeAuthService{}, time.Second)

	pair, err := client.IssueTokens(context.Background(), "admin-1", "android", "admin", "")

	assert.Nil(t, pair)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestIdentityClient_RefreshAccessToken(t *testing.T) {
	client := setupIdentityTest(t, &fakeAuthService{}, time.Second)

	token, err := client.RefreshAccessToken(context.Background(), "good-refresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh-access", token)

	token, err = client.RefreshAccessToken(context.Background(), "stale")
	assert.Empty(t, token)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestIdentityClient_Timeout(t *testing.T) {
	client := setupIdentityTest(t, &fakeAuthService{delay: time.Second}, 50*time.Millisecond)

	_, err := client.RefreshAccessToken(context.Background(), "good-refresh")

	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
}

func TestIdentityClient_Revoke(t *testing.T) {
	client := setupIdentityTest(t, &fakeAuthService{}, time.Second)

	ok, err := client.Revoke(context.Background(), "live-token")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.Revoke(context.Background(), "dead-token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIdentityClient_Validate(t *testing.T) {
	client := setupIdentityTest(t, &fakeAuthService{}, time.Second)

	res, err := client.Validate(context.Background(), "live-token")
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.Equal(t, "admin-1", res.EntityID)

	res, err = client.Validate(context.Background(), "other")
	require.NoError(t, err)
	assert.False(t, res.IsValid)
	assert.Empty(t, res.EntityID)
}

func TestIdentityClient_CloseWithoutOwnership(t *testing.T) {
	client := NewIdentityClientFromConn(nil, "bufnet", 0, "")
	assert.NoError(t, client.Close())
	assert.Equal(t, 5*time.Second, client.timeout)
	assert.Equal(t, rpc.ProtoCodecName, client.codec)
}

func TestIdentityClient_CheckHealth(t *testing.T) {
	client := setupIdentityTest(t, &fakeAuthService{}, time.Second)

	_, err := client.Validate(context.Background(), "live-token")
	require.NoError(t, err)
	assert.NoError(t, client.CheckHealth(context.Background()))

	require.NoError(t, client.conn.(*grpc.ClientConn).Close())
	err = client.CheckHealth(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN")
}

func TestIdentityClient_JSONCodec(t *testing.T) {
	svc := &fakeAuthService{}
	client := setupIdentityTestWithCodec(t, svc, time.Second, rpc.CodecName)

	pair, err := client.IssueTokens(context.Background(), "admin-1", "web", "admin", "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, "access-admin-1", pair.AccessToken)
	assert.Equal(t, "web", svc.lastGetToken.DeviceID)

	res, err := client.Validate(context.Background(), "live-token")
	require.NoError(t, err)
	assert.True(t, res.IsValid)
}

func TestNewIdentityClient_UnknownCodec(t *testing.T) {
	client, err := NewIdentityClient(models.IdentityConfig{Address: "localhost:50051", Insecure: true, Codec: "xml"})

	assert.Nil(t, client)
	assert.ErrorContains(t, err, `unknown identity codec "xml"`)
}

func TestNewIdentityClient_DefaultsToProto(t *testing.T) {
	client, err := NewIdentityClient(models.IdentityConfig{Address: "localhost:50051", Insecure: true})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, rpc.ProtoCodecName, client.codec)
}
