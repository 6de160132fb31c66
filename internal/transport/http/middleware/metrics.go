package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aggregator_http_requests_total",
		Help: "Количество HTTP-запросов по маршруту, методу и статусу.",
	}, []string{"route", "method", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aggregator_http_request_duration_seconds",
		Help:    "Длительность обработки HTTP-запроса.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// Metrics собирает счётчик и гистограмму длительности по каждому запросу.
// В метку route идёт шаблон маршрута chi (не сырой путь), чтобы не раздувать
// кардинальность метрик идентификаторами из URL.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)
			dur := time.Since(start)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}

			httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(route, r.Method).Observe(dur.Seconds())
		})
	}
}
