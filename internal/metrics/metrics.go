// Package metrics expõe os contadores de conversão em um registry próprio.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados possíveis de uma conversão.
const (
	ResultSuccess = "sucesso"
	ResultFailure = "erro"
)

// Metrics agrupa os coletores do conversor.
type Metrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	records     *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// New registra os coletores em um registry novo, o que permite várias instâncias em testes.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "converter_conversions_total",
			Help: "Total de conversões por tipo, origem e resultado",
		}, []string{"tipo", "origem", "resultado"}),
		records: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "converter_records_total",
			Help: "Total de registros normalizados por tipo",
		}, []string{"tipo"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "converter_conversion_duration_seconds",
			Help:    "Duração das conversões",
			Buckets: prometheus.DefBuckets,
		}, []string{"tipo"}),
	}
}

// ObserveConversion contabiliza uma conversão. records só é somado em caso de sucesso.
func (m *Metrics) ObserveConversion(tipo, origem, resultado string, records int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(tipo, origem, resultado).Inc()
	m.duration.WithLabelValues(tipo).Observe(elapsed.Seconds())
	if resultado == ResultSuccess && records > 0 {
		m.records.WithLabelValues(tipo).Add(float64(records))
	}
}

// Handler serve o registry no formato de exposição do Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry devolve o registry interno.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
