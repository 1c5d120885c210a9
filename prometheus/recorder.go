package prometheus

import (
	"errors"

	"code.cloudfoundry.org/lager"
	api "github.com/prometheus/client_golang/prometheus"
)

//counterfeiter:generate . Recorder

// Recorder counts what the echo server does. The handler increments
// RequestsEchoed once per page written. The server increments
// ConnectionFailures for every connection it abandons and for every temporary
// accept failure it backs off from.
type Recorder interface {
	Increment(counterName string)
}

type prometheusRecorder struct {
	logger   lager.Logger
	counters map[string]api.Counter
}

// NewRecorder registers the RequestsEchoed and ConnectionFailures counters
// with registry. A counter already registered under the same name is reused,
// so several recorders can share one registry.
func NewRecorder(logger lager.Logger, registry api.Registerer) (Recorder, error) {
	requestsEchoed, err := registerCounter(registry, RequestsEchoed, RequestsEchoedHelp)
	if err != nil {
		return nil, err
	}

	connectionFailures, err := registerCounter(registry, ConnectionFailures, ConnectionFailuresHelp)
	if err != nil {
		return nil, err
	}

	return &prometheusRecorder{
		logger: logger,
		counters: map[string]api.Counter{
			RequestsEchoed:     requestsEchoed,
			ConnectionFailures: connectionFailures,
		},
	}, nil
}

func (p *prometheusRecorder) Increment(counterName string) {
	logger := p.logger.Session("increment-counter", lager.Data{"counter-name": counterName})

	counter, ok := p.counters[counterName]
	if !ok {
		logger.Error("unknown-counter", nil)

		return
	}

	counter.Inc()
}

// Totals reads back the value of every counter in the gatherer, keyed by
// metric name.
func Totals(gatherer api.Gatherer) (map[string]float64, error) {
	metricFamilies, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}

	totals := map[string]float64{}

	for _, mf := range metricFamilies {
		for _, m := range mf.Metric {
			if m.Counter == nil {
				continue
			}

			totals[mf.GetName()] += m.Counter.GetValue()
		}
	}

	return totals, nil
}

func registerCounter(registry api.Registerer, name, help string) (api.Counter, error) {
	c := api.NewCounter(api.CounterOpts{
		Name: name,
		Help: help,
	})

	err := registry.Register(c)
	if err == nil {
		return c, nil
	}

	var are api.AlreadyRegisteredError
	if errors.As(err, &are) {
		return are.ExistingCollector.(api.Counter), nil
	}

	return nil, err
}
