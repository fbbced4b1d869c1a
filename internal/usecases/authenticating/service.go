package authenticating

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

// Authenticator valida os tokens emitidos pelo serviço de identidade.
// A emissão não acontece aqui: o dashboard só confere a assinatura.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, NewAuthError(ErrInvalidToken, "AUTH_006", "token ausente")
	}

	if len(s.secret) == 0 {
		return nil, NewAuthError(ErrInvalidToken, "AUTH_006", "AUTH_SECRET não configurado")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, "AUTH_007", "")
		}
		return nil, NewAuthError(ErrInvalidToken, "AUTH_006", err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, "AUTH_006", "")
	}

	return claims, nil
}
