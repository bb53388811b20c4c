package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/atluixx/lynkt/internal/auth/domain"
	apperrors "github.com/atluixx/lynkt/internal/errors"
)

var (
	errMissingSubject  = errors.New("token has no subject")
	errMissingIssuedAt = errors.New("token has no issued-at claim")
	errIssuedInFuture  = errors.New("token issued in the future")
)

// TokenCodecOption configures a TokenCodec.
type TokenCodecOption func(*jwtTokenCodec)

// WithClock replaces time.Now as the codec's time source.
func WithClock(now func() time.Time) TokenCodecOption {
	return func(c *jwtTokenCodec) {
		c.now = now
	}
}

// WithClockSkew sets how far in the future an issued-at claim may lie.
func WithClockSkew(skew time.Duration) TokenCodecOption {
	return func(c *jwtTokenCodec) {
		c.skew = skew
	}
}

// jwtTokenCodec implements TokenCodec with HS256 JWTs.
type jwtTokenCodec struct {
	secret []byte
	ttl    time.Duration
	skew   time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewTokenCodec creates a TokenCodec signing with secret and issuing tokens valid for ttl.
func NewTokenCodec(secret string, ttl time.Duration, opts ...TokenCodecOption) (TokenCodec, error) {
	if secret == "" {
		return nil, apperrors.New("token signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	c := &jwtTokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)

	return c, nil
}

// Issue signs a new token for subject.
func (c *jwtTokenCodec) Issue(subject string) (*domain.IssuedToken, error) {
	jti, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate token id")
	}

	issuedAt := c.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(c.ttl)

	claims := jwt.RegisteredClaims{
		ID:        jti.String(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign token")
	}

	return &domain.IssuedToken{
		Token: signed,
		Claims: domain.Claims{
			ID:        claims.ID,
			Subject:   subject,
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		},
	}, nil
}

// Verify decodes token and classifies it as Valid, Expired or Invalid.
// The jwt parser checks the HMAC signature (constant-time) before any claim,
// so a tampered expired token is Invalid, not Expired.
func (c *jwtTokenCodec) Verify(token string) domain.VerificationOutcome {
	var claims jwt.RegisteredClaims

	_, err := c.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) && claims.ExpiresAt != nil {
			return domain.Expired{ExpiredAt: claims.ExpiresAt.Time}
		}
		return domain.Invalid{Reason: err}
	}

	if claims.Subject == "" {
		return domain.Invalid{Reason: errMissingSubject}
	}
	if claims.IssuedAt == nil {
		return domain.Invalid{Reason: errMissingIssuedAt}
	}
	if claims.IssuedAt.After(c.now().Add(c.skew)) {
		return domain.Invalid{Reason: errIssuedInFuture}
	}

	return domain.Valid{Claims: domain.Claims{
		ID:        claims.ID,
		Subject:   claims.Subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}}
}
