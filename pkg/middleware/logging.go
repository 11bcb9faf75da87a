package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/vfg2006/business-advisor-api/pkg/log"
	"github.com/vfg2006/business-advisor-api/pkg/metrics"
)

// Requisições acima deste limite geram um aviso de lentidão
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra o início e o fim de cada requisição HTTP e
// alimenta os contadores de requisições
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Todo log da requisição compartilha o mesmo ID de correlação
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)

			startTime := time.Now()

			logRequestStarted(r, correlationID)

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(lrw.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method).Observe(responseTime.Seconds())

			logRequestCompleted(r, correlationID, lrw.statusCode, responseTime)
		})
	}
}

func logRequestStarted(r *http.Request, correlationID string) {
	if log.IsDevelopment() {
		// Em desenvolvimento o formato é curto para não poluir o console
		log.L.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Info("→ Iniciando requisição")
		return
	}

	log.L.WithFields(log.Fields{
		"correlation_id": correlationID,
		"remote_addr":    r.RemoteAddr,
		"method":         r.Method,
		"path":           r.URL.Path,
		"query":          r.URL.RawQuery,
		"user_agent":     r.UserAgent(),
		"referer":        r.Referer(),
		"content_type":   r.Header.Get("Content-Type"),
		"content_length": r.ContentLength,
	}).Info("Requisição iniciada")
}

func logRequestCompleted(r *http.Request, correlationID string, statusCode int, responseTime time.Duration) {
	if log.IsDevelopment() {
		statusSymbol := "✓"
		if statusCode >= 400 {
			statusSymbol = "✗"
		}

		logger := log.L.WithFields(log.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status_code": statusCode,
		})

		logByStatus(logger, statusCode, fmt.Sprintf("%s Completada em %s", statusSymbol, formatDuration(responseTime)))

		if responseTime > slowRequestThreshold {
			log.L.Warnf("⚠ Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, responseTime.Milliseconds())
		}

		return
	}

	logFields := log.Fields{
		"correlation_id": correlationID,
		"method":         r.Method,
		"path":           r.URL.Path,
		"duration_ms":    responseTime.Milliseconds(),
		"status_code":    statusCode,
	}

	switch {
	case statusCode >= 500:
		log.L.WithFields(logFields).Error("Requisição finalizada com erro")
	case statusCode >= 400:
		log.L.WithFields(logFields).Warn("Requisição finalizada com aviso")
	default:
		log.L.WithFields(logFields).Info("Requisição finalizada com sucesso")
	}

	if responseTime > slowRequestThreshold {
		log.L.WithFields(logFields).Warnf("Requisição lenta: %s", responseTime)
	}
}

func logByStatus(logger log.Logger, statusCode int, message string) {
	switch {
	case statusCode >= 500:
		logger.Error(message)
	case statusCode >= 400:
		logger.Warn(message)
	default:
		logger.Info(message)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	} else {
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
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

// LogPanicMiddleware intercepta panics, registra a pilha e devolve 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logPanic(r, err)

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func logPanic(r *http.Request, panicErr any) {
	stack := make([]byte, 4096)
	stackSize := runtime.Stack(stack, false)
	stackTrace := string(stack[:stackSize])

	if log.IsDevelopment() {
		log.L.WithFields(log.Fields{
			"error": panicErr,
			"path":  r.URL.Path,
		}).Error("❌ PANIC na aplicação")

		// Em desenvolvimento a pilha vai direto para o console
		fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
		return
	}

	correlationID := log.GetCorrelationID(r.Context())

	logger := log.L.WithFields(log.Fields{
		"correlation_id": correlationID,
		"panic_error":    panicErr,
		"method":         r.Method,
		"path":           r.URL.Path,
	})

	logger.Error("Erro não tratado na aplicação")
	logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
}
