package auth

import (
	"time"

	"campus/config"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // Process-wide signing secret, read-only after construction.
	ttl    time.Duration // Validity of issued tokens.
}

// NewJWTService is the constructor for jwtService.
// A missing secret is a start-up failure, never a per-request one.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := config.DefaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
	}, nil
}

// Issue signs a token for lecturerID with iat = now and exp = now + TTL.
// JWT timestamps have second precision, so exp is rounded up to the next whole
// second and the token verifies for the full [now, now+TTL) window.
func (s *jwtService) Issue(lecturerID uuid.UUID, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   lecturerID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(ceilToSecond(now.Add(s.ttl))),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify validates structure, signature, expiry and subject, in that order.
func (s *jwtService) Verify(tokenString string, now time.Time) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		// The algorithm is fixed here; the token's own "alg" header is never trusted.
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return uuid.Nil, classifyTokenError(err)
	}

	lecturerID, err := uuid.Parse(claims.Subject)
	if err != nil || lecturerID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrTokenSubjectInvalid
	}

	return lecturerID, nil
}

// TTL returns the configured duration for issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

// classifyTokenError maps jwt parser errors onto the token error taxonomy.
// Anything unrecognised is treated as malformed.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domainerrors.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return domainerrors.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired
	default:
		return domainerrors.ErrTokenMalformed
	}
}

func ceilToSecond(t time.Time) time.Time {
	truncated := t.Truncate(time.Second)
	if truncated.Equal(t) {
		return truncated
	}

	return truncated.Add(time.Second)
}
