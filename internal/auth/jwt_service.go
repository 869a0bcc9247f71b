package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned when a token is malformed, expired or its
	// signature does not verify. The cause is deliberately not distinguished.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingSubject is returned when a valid token carries no subject claim.
	ErrMissingSubject = errors.New("token subject not found")
)

// Claims represents the session token payload. The subject is the user's
// email; ID carries a unique token identifier used for revocation.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService issues and decodes signed session tokens.
type JWTService struct {
	secret []byte
	method jwt.SigningMethod
}

// NewJWTService creates a token service with the given secret and HMAC
// algorithm name (HS256, HS384 or HS512). Unknown names fall back to HS256.
func NewJWTService(secret, algorithm string) *JWTService {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &JWTService{
		secret: []byte(secret),
		method: method,
	}
}

// Issue builds a signed token for subject, expiring after ttl.
func (s *JWTService) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// Decode verifies signature and expiry and returns the claims.
func (s *JWTService) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}
