package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/allisson/gamestats/internal/auth/domain"
	apperrors "github.com/allisson/gamestats/internal/errors"
)

// ErrEmptySecret is returned when a token service is built without a signing secret.
var ErrEmptySecret = errors.New("token secret must not be empty")

// tokenClaims is the JWT payload. The subject carries the username.
type tokenClaims struct {
	Role          string `json:"role"`
	SessionHandle string `json:"sessionHandle"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService with HMAC-SHA256 signed JWTs.
type tokenService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// TokenOption configures a token service.
type TokenOption func(*tokenService)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(t *tokenService) {
		t.now = now
	}
}

// Sign issues an HS256 token for username valid for the configured expiration.
func (t *tokenService) Sign(
	username string,
	role domain.Role,
	sessionHandle string,
) (domain.IssuedToken, error) {
	issuedAt := t.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(t.expiration)

	claims := tokenClaims{
		Role:          role.String(),
		SessionHandle: sessionHandle,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return domain.IssuedToken{}, apperrors.Wrap(err, "failed to sign token")
	}

	return domain.IssuedToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Verify parses token and validates its signature, algorithm and expiry.
func (t *tokenService) Verify(token string) (domain.Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return domain.Claims{}, apperrors.Wrap(domain.ErrTokenInvalid, err.Error())
	}

	if claims.Subject == "" || claims.SessionHandle == "" {
		return domain.Claims{}, apperrors.Wrap(domain.ErrTokenInvalid, "missing subject or session handle")
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Claims{}, apperrors.Wrap(domain.ErrTokenInvalid, err.Error())
	}

	result := domain.Claims{
		Subject:       claims.Subject,
		Role:          role,
		SessionHandle: claims.SessionHandle,
		ExpiresAt:     claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	return result, nil
}

// NewTokenService creates a TokenService signing with secret. Tokens expire after expiration.
func NewTokenService(secret string, expiration time.Duration, opts ...TokenOption) (TokenService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	t := &tokenService{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}
