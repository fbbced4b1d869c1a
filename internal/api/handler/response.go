package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("falha ao escrever resposta")
	}
}

// writeServiceError registra o erro e responde com o código carregado por ele
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"error": err.Error(),
	}).Warn(msg)

	apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
}

// dimensionParam lê width/height da query; ausente vira 0 e o serviço aplica o padrão
func dimensionParam(r *http.Request, name string) (float64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, true
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func chartSize(w http.ResponseWriter, r *http.Request) (float64, float64, bool) {
	width, ok := dimensionParam(r, "width")
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "width deve ser um número positivo", nil)
		return 0, 0, false
	}

	height, ok := dimensionParam(r, "height")
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "height deve ser um número positivo", nil)
		return 0, 0, false
	}

	return width, height, true
}
