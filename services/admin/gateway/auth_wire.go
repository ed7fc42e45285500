package gateway

import (
	"github.com/piresc/admin-gateway/internal/pkg/rpc"
)

// Protobuf field numbers follow api/proto/auth.proto.

var (
	_ rpc.WireMessage = (*GetTokenRequest)(nil)
	_ rpc.WireMessage = (*GetTokenResponse)(nil)
	_ rpc.WireMessage = (*AccessTokenRequest)(nil)
	_ rpc.WireMessage = (*AccessTokenResponse)(nil)
	_ rpc.WireMessage = (*LogoutRequest)(nil)
	_ rpc.WireMessage = (*LogoutResponse)(nil)
	_ rpc.WireMessage = (*ValidateTokenRequest)(nil)
	_ rpc.WireMessage = (*ValidateTokenResponse)(nil)
)

func (m *GetTokenRequest) AppendWire(b []byte) []byte {
	b = rpc.AppendString(b, 1, m.Email)
	b = rpc.AppendString(b, 2, m.DeviceID)
	b = rpc.AppendString(b, 3, m.Role)
	return rpc.AppendString(b, 4, m.UserID)
}

func (m *GetTokenRequest) ReadWire(b []byte) error {
	return rpc.ReadFields(b, func(f rpc.Field) (err error) {
		switch f.Num {
		case 1:
			m.Email, err = f.AsString()
		case 2:
			m.DeviceID, err = f.AsString()
		case 3:
			m.Role, err = f.AsString()
		case 4:
			m.UserID, err = f.AsString()
		}
		return err
	})
}

func (m *GetTokenResponse) AppendWire(b []byte) []byte {
	b = rpc.AppendString(b, 1, m.AccessToken)
	return rpc.AppendString(b, 2, m.RefreshToken)
}

func (m *GetTokenResponse) ReadWire(b []byte) error {
	return rpc.ReadFields(b, func(f rpc.Field) (err error) {
		switch f.Num {
		case 1:
			m.AccessToken, err = f.AsString()
		case 2:
			m.RefreshToken, err = f.AsString()
		}
		return err
	})
}

func (m *AccessTokenRequest) AppendWire(b []byte) []byte {
	return rpc.AppendString(b, 1, m.RefreshToken)
}

func (m *AccessTokenRequest) ReadWire(b []byte) error {
	return rpc.ReadFields(b, func(f rpc.Field) (err error) {
		if f.Num == 1 {
			m.RefreshToken, err = f.AsString()
		}
		return err
	})
}

func (m *AccessTokenResponse) AppendWire(b []byte) []byte {
	return rpc.AppendString(b, 1, m.AccessToken)
}

func (m *AccessTokenResponse) ReadWire(b []byte) error {
	return rpc.ReadFields(b, func(f rpc.Field) (err error) {
		if f.Num == 1 {
			m.AccessToken, err = f.AsString()
		}
		return err
	})
}

func (m *LogoutRequest) AppendWire(b []byte) []byte {
	return rpc.AppendString(b, 1, m.AccessToken)
}

func (m *LogoutRequest) ReadWire(b []byte) error {
	return rpc.ReadFields(b, func(f rpc.Field) (err error) {
		if f.Num == 1 {
			m.AccessToken, err = f.AsString()
		}
		return err
	})
}

func (m *LogoutResponse) AppendWire(b []byte) []byte {
	return rpc.AppendBool(b, 1, m.Success)
}

func (m *LogoutResponse) ReadWire(b []byte) error {
	return rpc.ReadFields(b, func(f rpc.Field) (err error) {
		if f.Num == 1 {
			m.Success, err = f.AsBool()
		}
		return err
	})
}

func (m *ValidateTokenRequest) AppendWire(b []byte) []byte {
	return rpc.AppendString(b, 1, m.AccessToken)
}

func (m *ValidateTokenRequest) ReadWire(b []byte) error {
	return rpc.ReadFields(b, func(f rpc.Field) (err error) {
		if f.Num == 1 {
			m.AccessToken, err = f.AsString()
		}
		return err
	})
}

func (m *ValidateTokenResponse) AppendWire(b []byte) []byte {
	b = rpc.AppendBool(b, 1, m.IsValid)
	return rpc.AppendString(b, 2, m.Admin)
}

func (m *ValidateTokenResponse) ReadWire(b []byte) error {
	return rpc.ReadFields(b, func(f rpc.Field) (err error) {
		switch f.Num {
		case 1:
			m.IsValid, err = f.AsBool()
		case 2:
			m.Admin, err = f.AsString()
		}
		return err
	})
}
