package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/campaign-insights-api/internal/metrics"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

const slowRequest = 500 * time.Millisecond

// LoggingMiddleware registra cada requisição HTTP com o ID de correlação e,
// quando m não é nil, alimenta as métricas de requisição
func LoggingMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"query":          r.URL.RawQuery,
				"remote_addr":    r.RemoteAddr,
				"user_agent":     r.UserAgent(),
			}).Info("→ Requisição iniciada")

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)
			m.RecordRequest(r.Method, lrw.statusCode, responseTime)

			logFields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"duration_ms":    responseTime.Milliseconds(),
				"status_code":    lrw.statusCode,
			}
			logger := log.L.WithFields(logFields)
			logMsg := fmt.Sprintf("%s Completada em %s", statusSymbol(lrw.statusCode), formatDuration(responseTime))

			switch {
			case lrw.statusCode >= 500:
				logger.Error(logMsg)
			case lrw.statusCode >= 400:
				logger.Warn(logMsg)
			default:
				logger.Info(logMsg)
			}

			if responseTime > slowRequest {
				logger.Warnf("⚠ Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, responseTime.Milliseconds())
			}
		})
	}
}

func statusSymbol(status int) string {
	if status >= 400 {
		return "✗"
	}
	return "✓"
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics dos handlers e responde 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  fmt.Sprint(err),
						"method": r.Method,
						"path":   r.URL.Path,
					})
					logger.Error("❌ PANIC na aplicação")

					if log.IsDevelopment() {
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
