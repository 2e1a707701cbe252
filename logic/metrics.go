package logic

import (
	"notify_relay/shared"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks notify_relay/logic IMetrics

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartPushRequestOut(label string) IRequestObserver
	RelayRunStarted(mode string)
	NotificationSent()
	NotificationFailed()
	WebhookEvent(label string)
	EnrichLookup(label string)
	CacheEntryCount(count int)
	InvalidTokenRemoved()
	ActiveTokenCount(count int)
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *shared.Config
	webRequestsIn       *prometheus.HistogramVec
	pushRequestsOut     *prometheus.HistogramVec
	relayRuns           *prometheus.CounterVec
	notificationsSent   prometheus.Counter
	notificationsFailed prometheus.Counter
	webhookEvents       *prometheus.CounterVec
	enrichLookups       *prometheus.CounterVec
	cacheEntryCount     prometheus.Gauge
	invalidTokens       prometheus.Counter
	activeTokenCount    prometheus.Gauge
	serviceStarted      prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of Web requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.pushRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "push_requests_out_duration",
		Help: "Duration in seconds of push requests made to delivery endpoints.",
	}, []string{"label"})
	prometheus.Register(res.pushRequestsOut)

	res.relayRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_runs",
		Help: "Number of relay passes executed",
	}, []string{"mode"})
	prometheus.Register(res.relayRuns)

	res.notificationsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notifications_sent",
		Help: "Number of notifications delivered",
	})
	prometheus.Register(res.notificationsSent)

	res.notificationsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notifications_failed",
		Help: "Number of notification sends that failed after retries",
	})
	prometheus.Register(res.notificationsFailed)

	res.webhookEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_events",
		Help: "Number of lifecycle webhook events received",
	}, []string{"label"})
	prometheus.Register(res.webhookEvents)

	res.enrichLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "enrich_lookups",
		Help: "Enrichment cache lookups",
	}, []string{"label"})
	prometheus.Register(res.enrichLookups)

	res.cacheEntryCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "enrich_cache_entries",
		Help: "Entries resident in the enrichment cache",
	})
	prometheus.Register(res.cacheEntryCount)

	res.invalidTokens = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "invalid_tokens_removed",
		Help: "Tokens removed after the delivery network reported them invalid",
	})
	prometheus.Register(res.invalidTokens)

	res.activeTokenCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "active_token_count",
		Help: "Active delivery tokens",
	})
	prometheus.Register(res.activeTokenCount)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartPushRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.pushRequestsOut}
}

func (m *metrics) RelayRunStarted(mode string) {
	m.relayRuns.WithLabelValues(mode).Add(1)
}

func (m *metrics) NotificationSent() {
	m.notificationsSent.Add(1)
}

func (m *metrics) NotificationFailed() {
	m.notificationsFailed.Add(1)
}

func (m *metrics) WebhookEvent(label string) {
	m.webhookEvents.WithLabelValues(label).Add(1)
}

func (m *metrics) EnrichLookup(label string) {
	m.enrichLookups.WithLabelValues(label).Add(1)
}

func (m *metrics) CacheEntryCount(count int) {
	m.cacheEntryCount.Set(float64(count))
}

func (m *metrics) InvalidTokenRemoved() {
	m.invalidTokens.Add(1)
}

func (m *metrics) ActiveTokenCount(count int) {
	m.activeTokenCount.Set(float64(count))
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
