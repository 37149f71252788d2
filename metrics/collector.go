// Package metrics exposes sink statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/tslog/handler"
)

// Source is what the collector reads on every scrape. *sink.Sink
// satisfies it.
type Source interface {
	handler.StatsProvider
	QueueLen() int
	QueueCap() int
}

// Collector implements prometheus.Collector over a Source. Values are
// read at scrape time, so nothing has to be updated on the log path.
type Collector struct {
	src Source

	processed     *prometheus.Desc
	dropped       *prometheus.Desc
	filtered      *prometheus.Desc
	blocked       *prometheus.Desc
	writeFailures *prometheus.Desc
	queueDepth    *prometheus.Desc
	queueCapacity *prometheus.Desc
}

// NewCollector creates a collector for src. constLabels are attached to
// every metric and may be nil.
func NewCollector(src Source, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("tslog", "", name), help, nil, constLabels)
	}
	return &Collector{
		src:           src,
		processed:     desc("entries_processed_total", "Entries written by the worker."),
		dropped:       desc("entries_dropped_total", "Entries discarded because the sink was shutting down or terminated."),
		filtered:      desc("entries_filtered_total", "Entries discarded because their category is disabled."),
		blocked:       desc("producer_blocked_total", "Times a producer waited on a full queue."),
		writeFailures: desc("write_failures_total", "Lines that could not be written to their file."),
		queueDepth:    desc("queue_depth", "Entries waiting for the worker."),
		queueCapacity: desc("queue_capacity", "Capacity of the entry queue."),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.processed
	ch <- c.dropped
	ch <- c.filtered
	ch <- c.blocked
	ch <- c.writeFailures
	ch <- c.queueDepth
	ch <- c.queueCapacity
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.processed, prometheus.CounterValue, float64(s.ProcessedTotal))
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(s.DroppedTotal))
	ch <- prometheus.MustNewConstMetric(c.filtered, prometheus.CounterValue, float64(s.FilteredTotal))
	ch <- prometheus.MustNewConstMetric(c.blocked, prometheus.CounterValue, float64(s.BlockedTotal))
	ch <- prometheus.MustNewConstMetric(c.writeFailures, prometheus.CounterValue, float64(s.WriteFailures))
	ch <- prometheus.MustNewConstMetric(c.queueDepth, prometheus.GaugeValue, float64(c.src.QueueLen()))
	ch <- prometheus.MustNewConstMetric(c.queueCapacity, prometheus.GaugeValue, float64(c.src.QueueCap()))
}

// Register creates a collector for src and registers it with reg
func Register(reg prometheus.Registerer, src Source, constLabels prometheus.Labels) (*Collector, error) {
	c := NewCollector(src, constLabels)
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}
