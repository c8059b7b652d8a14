// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"mirage/config"
	domainerrors "mirage/internal/domain/errors"
	"mirage/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService. A missing signing secret is
// a fatal configuration error: the application must not start without one.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, domainerrors.ErrServerConfig.WrapMessage("jwt secret must be provided")
	}

	accessTTL := time.Hour
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		accessTTL = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: accessTTL,
		now:       time.Now,
	}, nil
}

// Generate creates a signed access token scoped to the given account.
func (s *jwtService) Generate(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Validate checks a token string and returns its claims when valid. Every
// failure mode (bad signature, malformed payload, expiry, wrong algorithm)
// collapses into the same domain error so the boundary never reveals which
// check failed.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return &service.Claims{UserID: userID}, nil
}
