// Package metrics exports simulation counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bedrock/internal/logging"
	"bedrock/internal/tile"
)

const namespace = "bedrock"

// Recorder implements sand.Observer and tracks tile populations.
type Recorder struct {
	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	generations  *prometheus.CounterVec
	genDuration  prometheus.Histogram
	tiles        *prometheus.GaugeVec
}

// New creates a recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks completed.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall time of one simulation tick.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Maps generated, by level name.",
		}, []string{"level"}),
		genDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Wall time of one map generation.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		tiles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tiles",
			Help:      "Tiles on the map, by material.",
		}, []string{"material"}),
	}
	for _, c := range []prometheus.Collector{r.ticks, r.tickDuration, r.generations, r.genDuration, r.tiles} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// TickDone records one tick.
func (r *Recorder) TickDone(d time.Duration) {
	r.ticks.Inc()
	r.tickDuration.Observe(d.Seconds())
}

// Generated records one map generation.
func (r *Recorder) Generated(level string, d time.Duration) {
	r.generations.WithLabelValues(level).Inc()
	r.genDuration.Observe(d.Seconds())
}

// SetCensus publishes per-material tile counts.
func (r *Recorder) SetCensus(counts [tile.MaterialCount]int) {
	for i, n := range counts {
		r.tiles.WithLabelValues(tile.Material(i).String()).Set(float64(n))
	}
}

// Serve exposes g on addr at /metrics until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return serve(ctx, ln, g)
}

func serve(ctx context.Context, ln net.Listener, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	logging.Infof("prometheus /metrics available at %s", ln.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Start runs Serve in the background, logging a failure instead of returning it.
func Start(ctx context.Context, addr string, g prometheus.Gatherer) {
	go func() {
		if err := Serve(ctx, addr, g); err != nil {
			logging.Errorf("metrics server: %v", err)
		}
	}()
}
