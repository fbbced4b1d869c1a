package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func NewAuthError(err error, code, details string) *AuthError {
	return &AuthError{Err: err, Code: code, Details: details}
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// APICode e APIMessage permitem que apiErrors traduza o erro em resposta HTTP
func (e *AuthError) APICode() string {
	return e.Code
}

func (e *AuthError) APIMessage() string {
	return e.Err.Error()
}

// IsTokenError verifica se o erro está relacionado ao token JWT
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}
