package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementCommand("pair", OutcomeOK)
	m.IncrementCommand("pair", OutcomeOK)
	m.IncrementCommand("pair", OutcomeParseError)
	m.ObserveCommand("pair", time.Now())
	m.SetRecords(3, 2, 1)
	m.AddCascadedPairs(2)
	m.AddCascadedPairs(0)
	m.IncrementStorageFailure("read")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Commands.WithLabelValues("pair", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("pair", OutcomeParseError)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Records.WithLabelValues("elderly")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Records.WithLabelValues("pair")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CascadedPairs))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StorageFailures.WithLabelValues("read")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementCommand("list", OutcomeOK)
		m.SetRecords(1, 1, 1)
		m.IncrementPublishFailure()
	})
}
