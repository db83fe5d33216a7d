package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims are the signed assertions carried by every QuickPass token.
// Besides the subject id and role, each principal kind embeds its natural
// business key under its own claim name. The key is a convenience for
// clients; authorization decisions use only ID and Role.
type Claims struct {
	ID         string `json:"id"`
	Role       string `json:"role"`
	Username   string `json:"username,omitempty"`   // Admin
	WardenID   string `json:"wardenId,omitempty"`   // Warden
	GuardID    string `json:"guardId,omitempty"`    // Security
	RollNumber string `json:"rollNumber,omitempty"` // Student
	jwtv5.RegisteredClaims
}

// PrincipalKey returns whichever business-key claim is set.
func (c *Claims) PrincipalKey() string {
	switch {
	case c.Username != "":
		return c.Username
	case c.WardenID != "":
		return c.WardenID
	case c.GuardID != "":
		return c.GuardID
	default:
		return c.RollNumber
	}
}

// Manager issues and verifies HS256-signed tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager with the given signing secret and
// token lifetime.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Generate signs a token for the given principal. role selects the claim
// name the business key is serialized under.
func (m *Manager) Generate(id, role, key string) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:   id,
		Role: role,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "quickpass",
		},
	}

	switch role {
	case "Admin":
		claims.Username = key
	case "Warden":
		claims.WardenID = key
	case "Security":
		claims.GuardID = key
	case "Student":
		claims.RollNumber = key
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a token and returns its claims. Expired tokens map to
// ErrTokenExpired, everything else invalid to ErrTokenInvalid; a failure
// never degrades to an anonymous identity.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
