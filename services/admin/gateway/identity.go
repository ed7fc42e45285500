package gateway

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"

	"github.com/piresc/admin-gateway/internal/pkg/models"
	nrpkg "github.com/piresc/admin-gateway/internal/pkg/newrelic"
	"github.com/piresc/admin-gateway/internal/pkg/rpc"
)

// Full method names on the identity service
const (
	MethodGetToken      = "/auth.AuthService/GetToken"
	MethodAccessToken   = "/auth.AuthService/AccessToken"
	MethodLogout        = "/auth.AuthService/Logout"
	MethodValidateToken = "/auth.AuthService/ValidateToken"
)

// Wire messages of auth.AuthService
type (
	GetTokenRequest struct {
		Email    string `json:"email"`
		DeviceID string `json:"deviceId"`
		Role     string `json:"role"`
		UserID   string `json:"userId"`
	}
	GetTokenResponse struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	AccessTokenRequest struct {
		RefreshToken string `json:"refreshToken"`
	}
	AccessTokenResponse struct {
		AccessToken string `json:"accessToken"`
	}
	LogoutRequest struct {
		AccessToken string `json:"accessToken"`
	}
	LogoutResponse struct {
		Success bool `json:"success"`
	}
	ValidateTokenRequest struct {
		AccessToken string `json:"accessToken"`
	}
	ValidateTokenResponse struct {
		IsValid bool   `json:"isValid"`
		Admin   string `json:"admin"`
	}
)

// IdentityClient is a thin adapter over the identity gRPC service. It does not
// retry, cache or look inside tokens; errors come back as gRPC status errors.
type IdentityClient struct {
	conn    grpc.ClientConnInterface
	target  string
	timeout time.Duration
	codec   string
	closer  func() error
}

// NewIdentityClient dials the identity service lazily
func NewIdentityClient(cfg models.IdentityConfig) (*IdentityClient, error) {
	var creds credentials.TransportCredentials
	if cfg.Insecure {
		creds = insecure.NewCredentials()
	} else {
		creds = credentials.NewClientTLSFromCert(nil, "")
	}

	codec := cfg.Codec
	if codec == "" {
		codec = rpc.ProtoCodecName
	}
	if encoding.GetCodec(codec) == nil {
		return nil, fmt.Errorf("unknown identity codec %q", codec)
	}

	conn, err := grpc.NewClient(cfg.Address,
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codec)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}

	client := NewIdentityClientFromConn(conn, cfg.Address, cfg.RPCTimeout, codec)
	client.closer = conn.Close
	return client, nil
}

// NewIdentityClientFromConn wraps an existing connection. An empty codec
// means protobuf.
func NewIdentityClientFromConn(conn grpc.ClientConnInterface, target string, timeout time.Duration, codec string) *IdentityClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if codec == "" {
		codec = rpc.ProtoCodecName
	}
	return &IdentityClient{conn: conn, target: target, timeout: timeout, codec: codec}
}

// Close releases the underlying connection when this client owns it
func (c *IdentityClient) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// CheckHealth reports the connection state. Connections not owned by a
// grpc.ClientConn are assumed healthy.
func (c *IdentityClient) CheckHealth(ctx context.Context) error {
	cc, ok := c.conn.(*grpc.ClientConn)
	if !ok {
		return nil
	}
	cc.Connect()
	switch state := cc.GetState(); state {
	case connectivity.TransientFailure, connectivity.Shutdown:
		return fmt.Errorf("identity service %s is %s", c.target, state)
	}
	return ctx.Err()
}

// invoke runs one unary call under a deadline derived from ctx
func (c *IdentityClient) invoke(ctx context.Context, method string, req, resp interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return nrpkg.WithExternalSegment(ctx, "grpc", method, c.target, func() error {
		return c.conn.Invoke(ctx, method, req, resp, grpc.CallContentSubtype(c.codec))
	})
}

// IssueTokens asks the identity service for a session token pair
func (c *IdentityClient) IssueTokens(ctx context.Context, subjectID, deviceID, role, email string) (*models.SessionTokenPair, error) {
	var resp GetTokenResponse
	err := c.invoke(ctx, MethodGetToken, &GetTokenRequest{
		Email:    email,
		DeviceID: deviceID,
		Role:     role,
		UserID:   subjectID,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &models.SessionTokenPair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, nil
}

// RefreshAccessToken exchanges a refresh token for a new access token
func (c *IdentityClient) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	var resp AccessTokenResponse
	if err := c.invoke(ctx, MethodAccessToken, &AccessTokenRequest{RefreshToken: refreshToken}, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Revoke ends the session behind accessToken
func (c *IdentityClient) Revoke(ctx context.Context, accessToken string) (bool, error) {
	var resp LogoutResponse
	if err := c.invoke(ctx, MethodLogout, &LogoutRequest{AccessToken: accessToken}, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

// Validate reports whether accessToken is currently live
func (c *IdentityClient) Validate(ctx context.Context, accessToken string) (*models.TokenValidation, error) {
	var resp ValidateTokenResponse
	if err := c.invoke(ctx, MethodValidateToken, &ValidateTokenRequest{AccessToken: accessToken}, &resp); err != nil {
		return nil, err
	}
	return &models.TokenValidation{IsValid: resp.IsValid, EntityID: resp.Admin}, nil
}
