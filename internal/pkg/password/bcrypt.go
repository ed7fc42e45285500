package password

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyPassword is returned when hashing an empty string
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrPasswordTooLong is returned for inputs bcrypt would silently truncate
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// Hasher hashes and verifies admin passwords with bcrypt
type Hasher struct {
	cost int

	dummyOnce sync.Once
	dummy     string
}

// NewHasher returns a Hasher using cost, clamped to bcrypt's accepted range
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt hash of plaintext
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if len(plaintext) > 72 {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. A mismatch is not an error;
// a malformed hash is.
func (h *Hasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

// DummyHash is a valid hash of a random secret at the configured cost.
// Comparing against it costs as much as a real verification.
func (h *Hasher) DummyHash() string {
	h.dummyOnce.Do(func() {
		hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), h.cost)
		if err == nil {
			h.dummy = string(hashed)
		}
	})
	return h.dummy
}
