package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// DefaultTokenTTL is how long issued access tokens stay valid when the
// caller does not override the lifespan.
const DefaultTokenTTL = 30 * time.Minute

// Token verification failures. Exactly one of these is returned for any
// invalid token.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenNoSubject = errors.New("token has no subject claim")
)

// accessClaims is the claim set carried by issued tokens: the owning
// username under "uid" plus the registered expiry.
type accessClaims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HMAC-SHA256 access tokens with a
// process-wide symmetric secret. The secret is read-only after startup.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer builds an issuer around the given secret. A non-positive
// ttl falls back to DefaultTokenTTL.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifespan.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token binding the username until now+ttl. A zero ttl uses
// the issuer default.
func (i *TokenIssuer) Issue(username string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = i.ttl
	}
	claims := accessClaims{
		UID: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses and validates a token, returning the bound username.
// Failures map to ErrTokenMalformed, ErrTokenSignature, ErrTokenExpired or
// ErrTokenNoSubject.
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", classifyTokenError(err)
	}
	if claims.UID == "" {
		return "", ErrTokenNoSubject
	}
	return claims.UID, nil
}

func classifyTokenError(err error) error {
	var vErr *jwt.ValidationError
	if !errors.As(err, &vErr) {
		return ErrTokenMalformed
	}
	switch {
	case vErr.Errors&jwt.ValidationErrorMalformed != 0:
		return ErrTokenMalformed
	case vErr.Errors&jwt.ValidationErrorSignatureInvalid != 0:
		return ErrTokenSignature
	case vErr.Errors&jwt.ValidationErrorExpired != 0:
		return ErrTokenExpired
	default:
		// Unknown signing methods and other parse problems count as
		// malformed input.
		return ErrTokenMalformed
	}
}
