package vpnhost

import "github.com/prometheus/client_golang/prometheus"

const metricsLabelResult = "result"

// Values of the "result" label.
const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
	resultFallback = "fallback"
)

// statsHostnameChecks counts client hostnames checked, by outcome.
var statsHostnameChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "vpnhost_hostname_checks_total",
	Help: "Total number of client hostnames checked.",
}, []string{metricsLabelResult})

// RegisterMetrics registers vpnhost collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(statsHostnameChecks)
}
