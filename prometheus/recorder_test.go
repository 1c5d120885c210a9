package prometheus_test

import (
	"fmt"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"
	"code.cloudfoundry.org/test-backend/prometheus"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	api "github.com/prometheus/client_golang/prometheus"
)

var _ = Describe("Recorder", func() {
	var (
		recorder prometheus.Recorder
		logger   *lagertest.TestLogger
		registry *api.Registry
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("prometheus-recorder")
		registry = api.NewRegistry()

		var err error
		recorder, err = prometheus.NewRecorder(logger, registry)
		Expect(err).NotTo(HaveOccurred())
	})

	It("records echoed requests", func() {
		recorder.Increment(prometheus.RequestsEchoed)
		Expect(getCounter(registry, prometheus.RequestsEchoed)).To(Equal(1))
		Expect(getCounter(registry, prometheus.ConnectionFailures)).To(Equal(0))
	})

	It("records connection failures", func() {
		recorder.Increment(prometheus.ConnectionFailures)
		recorder.Increment(prometheus.ConnectionFailures)
		Expect(getCounter(registry, prometheus.ConnectionFailures)).To(Equal(2))
	})

	When("the counter does not exist", func() {
		It("prints an error log", func() {
			recorder.Increment("does-not-exist")
			logs := logger.Logs()
			Expect(logs).To(HaveLen(1))
			Expect(logs[0].LogLevel).To(Equal(lager.ERROR))
			Expect(logs[0].Message).To(ContainSubstring("unknown-counter"))
			Expect(logs[0].Data).To(HaveKeyWithValue("counter-name", "does-not-exist"))
		})
	})

	When("using a shared registry", func() {
		var otherRecorder prometheus.Recorder

		BeforeEach(func() {
			var err error
			otherRecorder, err = prometheus.NewRecorder(logger, registry)
			Expect(err).NotTo(HaveOccurred())
		})

		It("adopts the existing counters", func() {
			recorder.Increment(prometheus.RequestsEchoed)
			otherRecorder.Increment(prometheus.RequestsEchoed)

			Expect(getCounter(registry, prometheus.RequestsEchoed)).To(Equal(2))
		})
	})

	When("the registry holds a different collector under the same name", func() {
		BeforeEach(func() {
			registry = api.NewRegistry()
			registry.MustRegister(api.NewGauge(api.GaugeOpts{
				Name: prometheus.RequestsEchoed,
				Help: "not a counter",
			}))
		})

		It("fails", func() {
			_, err := prometheus.NewRecorder(logger, registry)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Totals", func() {
		It("reads back every counter", func() {
			recorder.Increment(prometheus.RequestsEchoed)
			recorder.Increment(prometheus.RequestsEchoed)
			recorder.Increment(prometheus.ConnectionFailures)

			Expect(prometheus.Totals(registry)).To(Equal(map[string]float64{
				prometheus.RequestsEchoed:     2,
				prometheus.ConnectionFailures: 1,
			}))
		})
	})
})

func getCounter(registry api.Gatherer, counterName string) int {
	metricFamilies, err := registry.Gather()
	Expect(err).NotTo(HaveOccurred())

	for _, mf := range metricFamilies {
		if *mf.Name != counterName {
			continue
		}

		for _, m := range mf.Metric {
			if m.Counter == nil {
				Fail(fmt.Sprintf("Metric %q has no counter set", counterName))

				return -1
			}

			return int(*m.Counter.Value)
		}
	}

	Fail(fmt.Sprintf("Could not find counter %q", counterName))

	return -1
}
