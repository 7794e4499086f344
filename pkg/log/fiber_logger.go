package log

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "crewhq",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "The latency of the HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"api"})

	httpRequestsCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crewhq",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of the HTTP requests.",
	}, []string{"api", "path", "method", "code"})
)

type LoggerConfig struct {
	Name          string
	UserGetter    func(c *fiber.Ctx) string
	DoMetrics     bool
	LogErrorsOnly bool
}

// NewFiberLogger writes one slog line per request and optionally feeds
// the prometheus request counters. Failed requests are always logged at
// warning, LogErrorsOnly pushes the successful ones down to debug.
func NewFiberLogger(conf *LoggerConfig) fiber.Handler {
	if conf == nil {
		conf = &LoggerConfig{Name: "http"}
	}

	logger := slog.Default().With(slog.String("logger", conf.Name))

	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()

		if conf.DoMetrics {
			httpRequestsDuration.With(prometheus.Labels{"api": conf.Name}).Observe(elapsed.Seconds())

			httpRequestsCount.With(prometheus.Labels{
				"api":    conf.Name,
				"path":   c.Path(),
				"method": c.Method(),
				"code":   strconv.Itoa(status),
			}).Inc()
		}

		attrs := []any{
			slog.String("client", c.IP()+":"+c.Port()),
			slog.Int("status", status),
			slog.Int64("ms", elapsed.Milliseconds()),
		}

		if conf.UserGetter != nil {
			attrs = append(attrs, slog.String("user", conf.UserGetter(c)))
		}

		if chainErr != nil {
			attrs = append(attrs, slog.Any("error", chainErr))
		}

		msg := fmt.Sprintf("%d %s %s", status, c.Method(), c.Path())

		switch {
		case status >= 400:
			logger.Warn(msg, attrs...)
		case conf.LogErrorsOnly:
			logger.Debug(msg, attrs...)
		default:
			logger.Info(msg, attrs...)
		}

		return chainErr
	}
}
