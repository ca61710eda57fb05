package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"orthanc/internal/metrics"
	ordercontroller "orthanc/internal/order/controller"
)

func NewRouter(orderCtrl *ordercontroller.OrderController, orderMetrics *metrics.OrderMetrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestMetrics(orderMetrics))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			logger.Error("writing health response", zap.Error(err))
		}
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orderCtrl.CreateOrder)
		r.Get("/", orderCtrl.FindOrders)
		r.Get("/{id}", orderCtrl.FindOrder)
		r.Patch("/{id}/status", orderCtrl.ChangeOrderStatus)
	})

	return r
}

func requestMetrics(orderMetrics *metrics.OrderMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			// Use the route pattern, not the raw path, to keep label cardinality bounded.
			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				path = rctx.RoutePattern()
			}
			orderMetrics.RecordRequestDuration(r.Method, path, time.Since(start))
		})
	}
}
