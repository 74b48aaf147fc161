package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arctic-chronicler/internal/config"
	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/dto"
	"arctic-chronicler/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const minSecretLength = 32

// TokenService issues and validates the bearer tokens that identify an expedition.
type TokenService interface {
	Issue(expeditionID string) (token string, expiresAt time.Time, err error)
	Validate(ctx context.Context, token string) (*dto.ExpeditionClaims, error)
}

type tokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService signs HS256 tokens that live as long as the expedition state.
func NewTokenService(cfg config.TokenConfig, ttl time.Duration) (TokenService, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, fmt.Errorf("token secret must be at least %d bytes long", minSecretLength)
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &tokenService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *tokenService) Issue(expeditionID string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := dto.ExpeditionClaims{
		ExpeditionID: expeditionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   expeditionID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, domain.NewInternalError("failed to sign expedition token", err)
	}
	return signed, expiresAt, nil
}

func (s *tokenService) Validate(ctx context.Context, tokenString string) (*dto.ExpeditionClaims, error) {
	claims := &dto.ExpeditionClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("Expedition token expired", zap.Error(err))
			return nil, domain.NewUnauthorizedError("expedition token expired", err)
		}
		logger.Get().Warn("Expedition token rejected", zap.Error(err))
		return nil, domain.NewUnauthorizedError("invalid expedition token", err)
	}
	if claims.ExpeditionID == "" {
		return nil, domain.NewUnauthorizedError("expedition token has no expedition id", nil)
	}
	return claims, nil
}
