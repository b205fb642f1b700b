package service

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	requests *prometheus.CounterVec
}

// newMetrics registers the request counter on registry, reusing the counter
// already registered there if any. Go and process collectors are only added
// when withRuntime is set.
func newMetrics(registry *prometheus.Registry, withRuntime bool) metrics {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gsmarena_requests_total",
			Help: "Handled action requests by action and response status.",
		},
		[]string{"action", "status"},
	)
	err := registry.Register(requests)
	if err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			panic(err)
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			panic(err)
		}
		requests = existing
	}

	if withRuntime {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return metrics{requests: requests}
}

func (m metrics) observe(action string, status int) {
	m.requests.WithLabelValues(action, strconv.Itoa(status)).Inc()
}
