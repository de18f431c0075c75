package metrics

import (
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matcher_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	MatchRunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matcher_run_duration_seconds",
			Help:    "Duration of each matching run in seconds.",
			Buckets: []float64{1, 5, 15, 30, 60, 120},
		},
	)
	PipelineStepDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "matcher_pipeline_step_duration_seconds",
			Help:       "Duration of each step in the matching pipeline.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"step"},
	)
	CompletedRunsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "matcher_runs_completed_total",
			Help: "Total number of completed matching runs.",
		},
	)
	FallbackScoresCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "matcher_fallback_scores_total",
			Help: "Total number of opportunities scored with the fallback value.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(MatchRunDuration)
	prometheus.MustRegister(PipelineStepDuration)
	prometheus.MustRegister(CompletedRunsCounter)
	prometheus.MustRegister(FallbackScoresCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
