package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderMetrics(t *testing.T) {
	m := NewOrderMetrics()

	require.NotNil(t, m)
	assert.NotNil(t, m.ordersCreated)
	assert.NotNil(t, m.statusChanges)
	assert.NotNil(t, m.validationRejections)
	assert.NotNil(t, m.requestDuration)
}

func TestNewOrderMetrics_ReusesRegisteredCollectors(t *testing.T) {
	// Calling the constructor twice against the same registry must not panic.
	registry := prometheus.NewRegistry()
	first := newOrderMetricsWithRegisterer(registry)
	second := newOrderMetricsWithRegisterer(registry)

	assert.Equal(t, first.ordersCreated, second.ordersCreated)
}

func TestRecordOrderCreated(t *testing.T) {
	m := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordOrderCreated()
	m.RecordOrderCreated()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersCreated))
}

func TestRecordStatusChange(t *testing.T) {
	m := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordStatusChange("DELIVERED")
	m.RecordStatusChange("DELIVERED")
	m.RecordStatusChange("CANCELLED")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.statusChanges.WithLabelValues("DELIVERED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusChanges.WithLabelValues("CANCELLED")))
}

func TestRecordValidationRejection(t *testing.T) {
	m := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordValidationRejection()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationRejections))
}

func TestRecordRequestDuration(t *testing.T) {
	m := newOrderMetricsWithRegisterer(prometheus.NewRegistry())

	m.RecordRequestDuration("GET", "/orders", 120*time.Millisecond)

	count := testutil.CollectAndCount(m.requestDuration)
	assert.Equal(t, 1, count)
}
