// Package metrics collects and exposes Prometheus metrics for the identity
// and enrichment flows.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts authentication outcomes and resume extraction results.
type Collector struct {
	authTotal       *prometheus.CounterVec
	extractionTotal *prometheus.CounterVec
	mergeTotal      prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		authTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alumni_auth_total",
			Help: "Authentication attempts by operation and result",
		}, []string{"operation", "result"}),
		extractionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alumni_resume_extraction_total",
			Help: "Resume extraction runs by outcome",
		}, []string{"outcome"}),
		mergeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "alumni_profile_merge_total",
			Help: "Profiles enriched from a parsed resume",
		}),
	}

	reg.MustRegister(c.authTotal, c.extractionTotal, c.mergeTotal)
	return c
}

func (c *Collector) RecordAuth(operation string, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.authTotal.WithLabelValues(operation, result).Inc()
}

// RecordExtraction records one parser run; outcome is "ok" or a failure
// kind.
func (c *Collector) RecordExtraction(outcome string) {
	c.extractionTotal.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordMerge() {
	c.mergeTotal.Inc()
}

// Handler exposes the registry on /metrics.
func Handler(reg *prometheus.Registry) gin.HandlerFunc {
	h := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
