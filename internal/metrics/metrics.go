package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics holds the Prometheus collectors for the order workflow.
type OrderMetrics struct {
	ordersCreated        prometheus.Counter
	statusChanges        *prometheus.CounterVec
	validationRejections prometheus.Counter
	requestDuration      *prometheus.HistogramVec
}

func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orthanc_orders_created_total",
			Help: "Total number of orders created",
		}),
		statusChanges: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orthanc_order_status_changes_total",
			Help: "Total number of order status changes",
		}, []string{"status"}),
		validationRejections: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orthanc_catalog_validation_rejections_total",
			Help: "Total number of order creations rejected by catalog validation",
		}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "orthanc_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderCreated increments the created-orders counter.
func (m *OrderMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordStatusChange increments the status-change counter for the new status.
func (m *OrderMetrics) RecordStatusChange(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}

// RecordValidationRejection increments the catalog-rejection counter.
func (m *OrderMetrics) RecordValidationRejection() {
	m.validationRejections.Inc()
}

// RecordRequestDuration records the duration of an HTTP request.
func (m *OrderMetrics) RecordRequestDuration(method, path string, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
