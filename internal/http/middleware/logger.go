package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"brilliantstylist/internal/logger"
)

// LoggerLocalKey holds the request-scoped *zap.Logger in Fiber's context locals.
const LoggerLocalKey = "logger"

// Logger logs one JSON line per request with request_id, method, path, status and latency (ms).
// Handlers can fetch the request-scoped logger through Log.
func Logger(base *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqLog := logger.FromContext(c.UserContext(), base).
			With(zap.String("request_id", RequestIDFromCtx(c)))
		c.Locals(LoggerLocalKey, reqLog)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		reqLog.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		)

		return err
	}
}

// LoggerWithWriter is Logger writing JSON lines to w with timestamps in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(logger.EncoderConfig(loc)),
		zapcore.AddSync(w),
		zapcore.InfoLevel,
	)
	return Logger(logger.NewWithCore(core))
}

// Log returns the request-scoped logger, or a no-op logger outside the Logger middleware.
func Log(c *fiber.Ctx) *zap.Logger {
	if l, ok := c.Locals(LoggerLocalKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
