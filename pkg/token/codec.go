// Package token encodes and decodes the compact three-segment session token
// (header.payload.signature) carried by the storefront and admin console.
//
// This is a demonstration codec: tokens are minted with an HMAC signature so
// the wire shape matches a real JWT, but Decode deliberately does NOT verify
// the signature. It exists for shape and interop only. Production use requires
// a server-verified signed token checked on every request.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
)

var (
	ErrMalformedToken = errors.New("token: malformed token")
	ErrExpiredToken   = errors.New("token: token expired")
)

// DefaultTTL is the session lifetime stamped into freshly minted tokens.
const DefaultTTL = 24 * time.Hour

// Claims is the token payload: {sub, email, name, role, iat, exp}.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// User reconstructs the identity record from the decoded payload.
func (c *Claims) User() models.User {
	return models.User{
		ID:    c.Subject,
		Email: c.Email,
		Name:  c.Name,
		Role:  c.Role,
	}
}

type Codec struct {
	signingKey []byte
	now        func() time.Time
}

func NewCodec(signingKey []byte) *Codec {
	return &Codec{
		signingKey: signingKey,
		now:        time.Now,
	}
}

// Encode mints a token for the given user with iat = now and exp = iat + 24h.
func (c *Codec) Encode(user models.User) (string, error) {
	return c.EncodeWithTTL(user, DefaultTTL)
}

// EncodeWithTTL mints a token with an explicit lifetime. A negative ttl
// produces an already-expired token, which the restoration tests rely on.
func (c *Codec) EncodeWithTTL(user models.User, ttl time.Duration) (string, error) {
	iat := c.now()
	claims := &Claims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signingKey)
}

// Decode splits and parses the token without verifying the signature. It
// returns ErrMalformedToken for a wrong segment count, invalid base64 or
// invalid JSON. Expiry is not checked here; callers use IsExpired or Validate.
func (c *Codec) Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// IsExpired reports whether the token's exp has passed. An unparseable token
// is treated as expired (fail-closed), as is a payload without an exp claim.
func (c *Codec) IsExpired(raw string) bool {
	claims, err := c.Decode(raw)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return !claims.ExpiresAt.After(c.now())
}

// Validate distinguishes the two failure modes for logging: a malformed token
// indicates corruption, an expired one a previously valid session aging out.
// Both degrade to "no session" for authorization purposes.
func (c *Codec) Validate(raw string) (*Claims, error) {
	claims, err := c.Decode(raw)
	if err != nil {
		return nil, err
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(c.now()) {
		return nil, ErrExpiredToken
	}
	return claims, nil
}
