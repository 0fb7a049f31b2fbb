package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

const namespace = "twistlock2codedx"

// Collector counts converted files and findings on its own registry, so a run
// exports only its own series.
type Collector struct {
	registry *prometheus.Registry

	filesProcessed *prometheus.CounterVec
	findings       *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		filesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_processed_total",
			Help:      "Number of Twistlock CSV files converted, by schema.",
		}, []string{"schema"}),
		findings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "findings_total",
			Help:      "Number of findings mapped from Twistlock CSV rows, by schema and severity.",
		}, []string{"schema", "severity"}),
	}
	c.registry.MustRegister(c.filesProcessed, c.findings)
	return c
}

func (c *Collector) FileProcessed(schema string) {
	c.filesProcessed.WithLabelValues(schema).Inc()
}

func (c *Collector) FindingMapped(schema, severity string) {
	c.findings.WithLabelValues(schema, severity).Inc()
}

// Registry returns the registry the counters are registered with.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteToTextfile writes the counters in the Prometheus text format, suitable
// for the node exporter textfile collector.
func (c *Collector) WriteToTextfile(path string) error {
	log.WithField("path", path).Debug("Writing metrics")
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return xerrors.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
