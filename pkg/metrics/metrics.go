// Package metrics exports render scheduler activity to Prometheus.
//
// A Collector turns scheduler hooks into counters and a pass duration
// histogram:
//
//	m := metrics.New("inplace")
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(m)
//	s := core.NewScheduler(root, app, core.WithHooks(m.Hooks()))
//	http.Handle("/metrics", metrics.Handler(reg))
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-drift/inplace/pkg/core"
)

// Collector holds the scheduler metrics. It implements prometheus.Collector.
type Collector struct {
	passes     *prometheus.CounterVec
	coalesced  *prometheus.CounterVec
	widgets    *prometheus.CounterVec
	attributes prometheus.Counter
	duration   prometheus.Histogram
}

// New creates the metrics under namespace.
func New(namespace string) *Collector {
	return &Collector{
		passes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "render_passes_total",
				Help:      "Render passes run, by result.",
			},
			[]string{"result"},
		),
		coalesced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "render_requests_coalesced_total",
				Help:      "Render requests merged into a pending or running pass.",
			},
			[]string{"state"},
		),
		widgets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "widgets_total",
				Help:      "Widgets visited by render passes, by outcome.",
			},
			[]string{"op"},
		),
		attributes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attributes_applied_total",
			Help:      "Attribute functions applied.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_pass_duration_seconds",
			Help:      "Duration of render passes.",
			Buckets:   []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.passes.Describe(ch)
	c.coalesced.Describe(ch)
	c.widgets.Describe(ch)
	c.attributes.Describe(ch)
	c.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.passes.Collect(ch)
	c.coalesced.Collect(ch)
	c.widgets.Collect(ch)
	c.attributes.Collect(ch)
	c.duration.Collect(ch)
}

// Hooks returns scheduler hooks that record into c.
func (c *Collector) Hooks() core.Hooks {
	return core.Hooks{
		OnPassEnd:   c.observePass,
		OnCoalesced: c.observeCoalesced,
	}
}

// Wrap returns hooks that record into c and then call next.
func (c *Collector) Wrap(next core.Hooks) core.Hooks {
	return core.Hooks{
		OnPassStart: next.OnPassStart,
		OnPassEnd: func(pass uint64, stats core.PassStats, elapsed time.Duration, err error) {
			c.observePass(pass, stats, elapsed, err)
			if next.OnPassEnd != nil {
				next.OnPassEnd(pass, stats, elapsed, err)
			}
		},
		OnCoalesced: func(state core.SchedulerState) {
			c.observeCoalesced(state)
			if next.OnCoalesced != nil {
				next.OnCoalesced(state)
			}
		},
	}
}

func (c *Collector) observePass(_ uint64, stats core.PassStats, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.passes.WithLabelValues(result).Inc()
	c.widgets.WithLabelValues("created").Add(float64(stats.Created))
	c.widgets.WithLabelValues("reused").Add(float64(stats.Reused))
	c.widgets.WithLabelValues("destroyed").Add(float64(stats.Destroyed))
	c.attributes.Add(float64(stats.Attributes))
	c.duration.Observe(elapsed.Seconds())
}

func (c *Collector) observeCoalesced(state core.SchedulerState) {
	c.coalesced.WithLabelValues(state.String()).Inc()
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
