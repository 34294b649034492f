//go:build linux && cgo

package main

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lmsensors-go/lmsensors/internal/snapshot"
	"github.com/lmsensors-go/lmsensors/pkg/sensors"
)

var (
	valueDesc = prometheus.NewDesc(
		"lm_sensors_value",
		"Current reading of one sensor sub-feature, in its native unit.",
		[]string{"chip", "feature", "label", "subfeature", "kind", "unit"},
		nil,
	)
	chipsDesc = prometheus.NewDesc(
		"lm_sensors_chips",
		"Number of chips seen during the last scrape.",
		nil, nil,
	)
	scrapeErrorsDesc = prometheus.NewDesc(
		"lm_sensors_scrape_errors_total",
		"Total sub-feature reads that failed since the exporter started.",
		nil, nil,
	)
	scrapeSuccessDesc = prometheus.NewDesc(
		"lm_sensors_up",
		"Whether the last scrape of the native library succeeded.",
		nil, nil,
	)
)

// collector reads every matching chip on each scrape. Values are
// produced as const metrics, so a scrape always reflects the hardware
// at scrape time rather than a cached state.
type collector struct {
	h      *sensors.Sensors
	match  *sensors.Chip
	logger *slog.Logger

	mu         sync.Mutex
	readErrors float64
}

func newCollector(h *sensors.Sensors, match *sensors.Chip, logger *slog.Logger) *collector {
	return &collector{h: h, match: match, logger: logger}
}

// Describe implements prometheus.Collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- valueDesc
	ch <- chipsDesc
	ch <- scrapeErrorsDesc
	ch <- scrapeSuccessDesc
}

// Collect implements prometheus.Collector.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	chips, err := snapshot.Collect(c.h, c.match)
	if err != nil {
		c.logger.Error("scrape failed", "error", err)
		ch <- prometheus.MustNewConstMetric(scrapeSuccessDesc, prometheus.GaugeValue, 0)
		return
	}
	ch <- prometheus.MustNewConstMetric(scrapeSuccessDesc, prometheus.GaugeValue, 1)
	ch <- prometheus.MustNewConstMetric(chipsDesc, prometheus.GaugeValue, float64(len(chips)))

	var failed float64
	for _, chip := range chips {
		for _, f := range chip.Features {
			label := f.Label
			if label == "" {
				label = f.Name
			}
			for _, sf := range f.Subfeatures {
				if sf.Error != "" {
					failed++
					c.logger.Debug("sub-feature read failed",
						"chip", chip.Name,
						"subfeature", sf.Name,
						"error", sf.Error,
					)
					continue
				}
				if sf.Value == nil {
					continue
				}
				ch <- prometheus.MustNewConstMetric(
					valueDesc,
					prometheus.GaugeValue,
					*sf.Value,
					chip.Name, f.Name, label, sf.Name, sf.Kind, sf.Unit,
				)
			}
		}
	}

	c.mu.Lock()
	c.readErrors += failed
	total := c.readErrors
	c.mu.Unlock()
	ch <- prometheus.MustNewConstMetric(scrapeErrorsDesc, prometheus.CounterValue, total)
}

// Compile-time interface satisfaction check.
var _ prometheus.Collector = (*collector)(nil)
