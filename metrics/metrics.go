package metrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zax124/turbomachine-calculator/cycle"
)

const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
)

var (
	totalTemperature0Gauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "turbomachine_total_temperature0_kelvin",
		Help: "Stagnation temperature at the flight condition of the last design point",
	})
	totalPressure0Gauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "turbomachine_total_pressure0_pascal",
		Help: "Stagnation pressure at the flight condition of the last design point",
	})
	totalTemperature3Gauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "turbomachine_total_temperature3_kelvin",
		Help: "Stagnation temperature after compression of the last design point",
	})
	tauLambdaGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "turbomachine_tau_lambda",
		Help: "Turbine inlet to flight stagnation temperature ratio Tt4/Tt0",
	})
	tauCGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "turbomachine_tau_c",
		Help: "Compressor temperature ratio Tt3/Tt0",
	})
	specificThrustGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "turbomachine_specific_thrust_n_per_kg_s",
		Help: "Specific thrust of the last design point (N per kg/s)",
	})
	thermalEfficiencyGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "turbomachine_thermal_efficiency",
		Help: "Thermal efficiency of the last design point",
	})
	propulsiveEfficiencyGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "turbomachine_propulsive_efficiency",
		Help: "Propulsive efficiency of the last design point",
	})

	computations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turbomachine_computations_total",
			Help: "Cycle computations by outcome",
		},
		[]string{"outcome"},
	)
	specificThrustHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "turbomachine_specific_thrust",
		Help:    "Specific thrust of computed points (N per kg/s)",
		Buckets: prometheus.LinearBuckets(0, 10, 12),
	})
)

func init() {
	prometheus.MustRegister(
		totalTemperature0Gauge, totalPressure0Gauge, totalTemperature3Gauge,
		tauLambdaGauge, tauCGauge,
		specificThrustGauge, thermalEfficiencyGauge, propulsiveEfficiencyGauge,
		computations, specificThrustHistogram,
	)
}

// RecordResult publishes a successful design point.
func RecordResult(res cycle.CycleResult) {
	log.Printf("Tt0: %.2f K | Pt0: %.2f Pa | Tt3: %.2f K | τλ: %.2f | τc: %.2f | F/ṁ: %.2f N/(kg/s) | ηth: %.2f | ηp: %.2f",
		res.TotalTemperature0, res.TotalPressure0, res.TotalTemperature3, res.TauLambda, res.TauC,
		res.SpecificThrust, res.ThermalEfficiency, res.PropulsiveEfficiency)
	totalTemperature0Gauge.Set(res.TotalTemperature0)
	totalPressure0Gauge.Set(res.TotalPressure0)
	totalTemperature3Gauge.Set(res.TotalTemperature3)
	tauLambdaGauge.Set(res.TauLambda)
	tauCGauge.Set(res.TauC)
	specificThrustGauge.Set(res.SpecificThrust)
	thermalEfficiencyGauge.Set(res.ThermalEfficiency)
	propulsiveEfficiencyGauge.Set(res.PropulsiveEfficiency)

	computations.WithLabelValues(OutcomeOK).Inc()
	specificThrustHistogram.Observe(res.SpecificThrust)
}

// RecordPoints counts the points of a sweep. Gauges keep the design point.
func RecordPoints(points []cycle.PerformancePoint) {
	for _, p := range points {
		computations.WithLabelValues(OutcomeOK).Inc()
		specificThrustHistogram.Observe(p.SpecificThrust)
	}
}

func RecordFailure() {
	computations.WithLabelValues(OutcomeInvalidInput).Inc()
}
