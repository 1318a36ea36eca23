package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the portal.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	ingestionsTotal *prometheus.CounterVec
	facultiesLoaded prometheus.Gauge
	classesLoaded   prometheus.Gauge
	swapDecisions   *prometheus.CounterVec
}

// NewMetricsService registers the portal's Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	ingestionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_ingestions_total",
		Help: "Total timetable ingestion attempts by outcome",
	}, []string{"outcome"})

	facultiesLoaded := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_faculties_loaded",
		Help: "Faculty records held by the current store generation",
	})

	classesLoaded := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_classes_loaded",
		Help: "Class schedules held by the current store generation",
	})

	swapDecisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "swap_decisions_total",
		Help: "Swap-request decisions by resulting status",
	}, []string{"status"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheHits, cacheMisses,
		ingestionsTotal, facultiesLoaded, classesLoaded, swapDecisions, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		ingestionsTotal: ingestionsTotal,
		facultiesLoaded: facultiesLoaded,
		classesLoaded:   classesLoaded,
		swapDecisions:   swapDecisions,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records duration and count for a completed request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	s.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(method, path, code).Inc()
}

// RecordCacheOperation counts a cache lookup outcome.
func (s *MetricsService) RecordCacheOperation(hit bool) {
	if hit {
		s.cacheHits.Inc()
		return
	}
	s.cacheMisses.Inc()
}

// RecordIngestion tracks an ingestion attempt and, on success, the resulting
// collection sizes.
func (s *MetricsService) RecordIngestion(success bool, facultyCount, classCount int) {
	if !success {
		s.ingestionsTotal.WithLabelValues("error").Inc()
		return
	}
	s.ingestionsTotal.WithLabelValues("success").Inc()
	s.facultiesLoaded.Set(float64(facultyCount))
	s.classesLoaded.Set(float64(classCount))
}

// RecordSwapDecision counts a swap-request status transition.
func (s *MetricsService) RecordSwapDecision(status string) {
	s.swapDecisions.WithLabelValues(status).Inc()
}
