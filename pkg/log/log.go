package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger encapsula o logrus para que os pacotes não dependam dele diretamente
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

type contextKey string

// CorrelationIDKey é a chave do ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

// devFields são os únicos campos mantidos nos logs de desenvolvimento
var devFields = map[string]struct{}{
	correlationIDField: {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	"error":            {},
	"snapshot_id":      {},
	"source":           {},
}

type logger struct {
	entry *logrus.Entry
}

// L é a instância global usada pelos pacotes da API
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// Configure aplica o nível (LOG_LEVEL) e o formato de texto com timestamp RFC3339
func Configure(level string) error {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return err
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetLevel(parsed)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
	return nil
}

// SetupTestLogger configura um logger simplificado para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func keepField(key string) bool {
	if !IsDevelopment() {
		return true
	}
	_, ok := devFields[key]
	return ok || strings.HasPrefix(key, "user_")
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if !keepField(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	relevant := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keepField(k) {
			relevant[k] = v
		}
	}
	if len(relevant) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(relevant)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext adiciona o ID de correlação do contexto, quando existir
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

func (l *logger) Debug(args ...interface{}) { l.entry.Debug(args...) }

func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

func (l *logger) Info(args ...interface{}) { l.entry.Info(args...) }

func (l *logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

func (l *logger) Warn(args ...interface{}) { l.entry.Warn(args...) }

func (l *logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

func (l *logger) Error(args ...interface{}) { l.entry.Error(args...) }

func (l *logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

func (l *logger) Fatal(args ...interface{}) { l.entry.Fatal(args...) }

func (l *logger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }

// WithCorrelationID adiciona um novo ID de correlação ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
