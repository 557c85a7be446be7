package metrics

import (
	"net/http"
	"time"

	"lottery-awards/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lottery_awards"

// Collector owns the service's Prometheus registry and implements
// ports.MetricsRecorder.
type Collector struct {
	registry *prometheus.Registry

	drawsPublished *prometheus.CounterVec
	ticketsChecked *prometheus.CounterVec
	awardsGranted  *prometheus.CounterVec
	awardedCents   prometheus.Counter
	sweepDuration  prometheus.Histogram
	sweepPayout    prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewCollector registers every collector on a fresh registry. Process and Go
// runtime collectors are included.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		drawsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "draws",
			Name:      "winning_numbers_published_total",
			Help:      "Winning numbers published, by prize tier.",
		}, []string{"tier"}),
		ticketsChecked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tickets",
			Name:      "checked_total",
			Help:      "Tickets checked against a draw, by outcome.",
		}, []string{"outcome"}),
		awardsGranted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tickets",
			Name:      "awards_total",
			Help:      "Awards derived for checked tickets, by match rule.",
		}, []string{"rule"}),
		awardedCents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tickets",
			Name:      "awarded_cents_total",
			Help:      "Sum of award totals for checked tickets, in cents.",
		}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "payout",
			Name:      "sweep_duration_seconds",
			Help:      "Time to evaluate every lottery number against a draw.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
		}),
		sweepPayout: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "payout",
			Name:      "last_total_cents",
			Help:      "Total payout of the most recent payout report, in cents.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
	}

	c.registry.MustRegister(
		c.drawsPublished,
		c.ticketsChecked,
		c.awardsGranted,
		c.awardedCents,
		c.sweepDuration,
		c.sweepPayout,
		c.httpRequests,
		c.httpDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return c
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) DrawPublished(draw *domain.Draw) {
	for tier, n := range draw.CountByTier() {
		c.drawsPublished.WithLabelValues(tier.String()).Add(float64(n))
	}
}

func (c *Collector) TicketChecked(results []domain.DerivedResult, total domain.Amount) {
	outcome := "lose"
	if !total.IsZero() {
		outcome = "win"
	}
	c.ticketsChecked.WithLabelValues(outcome).Inc()

	for _, r := range results {
		for _, a := range r.Awards {
			c.awardsGranted.WithLabelValues(a.Rule.String()).Inc()
		}
	}
	if cents := total.Minor(); cents > 0 {
		c.awardedCents.Add(float64(cents))
	}
}

func (c *Collector) PayoutSwept(summary domain.PayoutSummary, elapsed time.Duration) {
	c.sweepDuration.Observe(elapsed.Seconds())
	c.sweepPayout.Set(float64(summary.Total.Minor()))
}

// ObserveHTTP records one handled request. route is the matched pattern, not
// the raw path.
func (c *Collector) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, status).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
