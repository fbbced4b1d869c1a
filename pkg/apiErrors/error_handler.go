package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro retornados pela API
const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de roteamento
	ErrNotFound         = "NF_001" // Rota não encontrada
	ErrMethodNotAllowed = "NF_002" // Método não permitido

	// Erros do dataset
	ErrDatasetUnavailable = "DATA_001" // Nenhum snapshot carregado
	ErrDatasetFetch       = "DATA_002" // Falha ao buscar o dataset na origem
	ErrRefreshCancelled   = "DATA_003" // Atualização cancelada ou substituída

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrExport         = "SRV_005" // Erro ao gerar planilha
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrDatasetUnavailable:    http.StatusServiceUnavailable,
	ErrDatasetFetch:          http.StatusBadGateway,
	ErrRefreshCancelled:      http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrExport:                http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// CodedError é implementado pelos erros de usecase que carregam um código de API
type CodedError interface {
	error
	APICode() string
	APIMessage() string
}

// StatusFor retorna o status HTTP de um código, 500 quando desconhecido
func StatusFor(code string) int {
	if status, exists := httpStatusMap[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// WriteFromError usa o código do erro quando ele é um CodedError e cai para
// fallbackCode caso contrário
func WriteFromError(w http.ResponseWriter, err error, fallbackCode string) {
	apiErr := FromError(err, fallbackCode)
	WriteError(w, apiErr.Code, apiErr.Message, nil)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var coded CodedError
	if errors.As(err, &coded) {
		return APIError{
			Code:    coded.APICode(),
			Message: coded.APIMessage(),
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
