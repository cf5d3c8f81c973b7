package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveConversion(t *testing.T) {
	m := New()

	m.ObserveConversion("Veículos", "AutoConf", ResultSuccess, 3, time.Millisecond)
	m.ObserveConversion("Veículos", "AutoConf", ResultSuccess, 2, time.Millisecond)
	m.ObserveConversion("Veículos", "AutoConf", ResultFailure, 9, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.conversions.WithLabelValues("Veículos", "AutoConf", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("Veículos", "AutoConf", ResultFailure)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.records.WithLabelValues("Veículos")))
}

func TestObserveConversion_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveConversion("Clientes", "AutoCerto", ResultSuccess, 1, 0) })
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveConversion("Clientes", "AutoCerto", ResultSuccess, 4, time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "converter_conversions_total")
	assert.Contains(t, string(body), `converter_records_total{tipo="Clientes"} 4`)
}
