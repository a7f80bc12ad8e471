package client

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tern_client",
			Name:      "requests_total",
			Help:      "HTTP requests issued by the SDK.",
		},
		[]string{"method"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tern_client",
			Name:      "request_failures_total",
			Help:      "HTTP requests that failed in transport or returned status >= 400.",
		},
		[]string{"method"},
	)
)

// metricsTransport counts every request passing through the client so
// callers scraping the default prometheus registry see SDK traffic.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestsTotal.WithLabelValues(req.Method).Inc()
	resp, err := mt.base.RoundTrip(req)
	if err != nil || resp.StatusCode >= http.StatusBadRequest {
		requestFailuresTotal.WithLabelValues(req.Method).Inc()
	}
	return resp, err
}

func (mt *metricsTransport) CloseIdleConnections() { closeIdleConnections(mt.base) }
