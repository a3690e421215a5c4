package logger

import (
	"context"
	"sync"

	"github.com/Alcunha-R/demo-api-stone-host/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const (
	// TracingKey ключ для трейсинга
	TracingKey = "trace_id"

	tracingIDContextKey ctxKey = "trace_id_ctx_key"
	eventIDContextKey   ctxKey = "event_id_ctx_key"
)

var (
	log      *zap.Logger
	logMutex sync.Mutex // Для безопасной ленивой инициализации
)

// InitLogger собирает логгер сервиса по конфигурации и делает его глобальным
func InitLogger(cfg config.Logger) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoding := "json"
	if cfg.Encoding == "console" {
		encoding = "console"
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.Encoding = encoding
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.OutputPaths = []string{cfg.OutputPath}
	zapCfg.ErrorOutputPaths = []string{cfg.OutputPath}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	logMutex.Lock()
	log = logger
	logMutex.Unlock()

	return logger, nil
}

// SetLogger устанавливает внешний экземпляр логгера (полезно для тестов)
func SetLogger(logger *zap.Logger) {
	logMutex.Lock()
	defer logMutex.Unlock()
	log = logger
}

// ensureLogger гарантирует, что логгер инициализирован
func ensureLogger() {
	logMutex.Lock()
	defer logMutex.Unlock()

	if log == nil {
		// Создаем простой логгер для тестов, который выводит в консоль
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		logger, _ := config.Build()
		log = logger
	}
}

// FromContext возвращает логгер с информацией из контекста (trace ID, span ID и т.д.)
func FromContext(ctx context.Context) *zap.Logger {
	ensureLogger()

	logger := log

	if ctx == nil {
		return logger
	}

	// Добавляем trace ID, если он есть в контексте
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		logger = logger.With(zap.String(TracingKey, traceID))
	}

	// Добавляем ID входящего события, если он есть в контексте
	if eventID := EventIDFromContext(ctx); eventID != "" {
		logger = logger.With(zap.String("event_id", eventID))
	}

	return logger
}

// ContextWithTraceID добавляет trace ID в контекст
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, tracingIDContextKey, traceID)
}

// TraceIDFromContext извлекает trace ID из контекста
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(tracingIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

// ContextWithEventID добавляет ID вебхука в контекст
func ContextWithEventID(ctx context.Context, eventID string) context.Context {
	return context.WithValue(ctx, eventIDContextKey, eventID)
}

// EventIDFromContext извлекает ID вебхука из контекста
func EventIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if eventID, ok := ctx.Value(eventIDContextKey).(string); ok {
		return eventID
	}
	return ""
}

// Info логирует сообщение с уровнем Info, используя контекст
func Info(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

// Warn логирует сообщение с уровнем Warn, используя контекст
func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

// Error логирует сообщение с уровнем Error, используя контекст
func Error(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Error(msg, fields...)
}
