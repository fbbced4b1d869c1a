package dashboarding

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDataset é retornado pelas views enquanto nenhum snapshot foi carregado
	ErrNoDataset = errors.New("dataset not loaded")

	ErrEmptyDataset      = errors.New("dataset source returned no data")
	ErrRefreshSuperseded = errors.New("dataset refresh superseded by a newer one")
	ErrClosed            = errors.New("dashboard service closed")

	ErrInvalidMetric    = errors.New("invalid metric")
	ErrInvalidChartKind = errors.New("invalid chart kind")
)

// DashboardError carrega o código da API junto do erro de origem
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais, repassados sem alteração ao cliente
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func (e *DashboardError) APICode() string {
	return e.Code
}

// APIMessage prioriza os detalhes, que guardam a mensagem original da falha
func (e *DashboardError) APIMessage() string {
	if e.Details != "" {
		return e.Details
	}
	return e.Err.Error()
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
