package cycle

// FlightInputs describes the flight condition in SI units.
type FlightInputs struct {
	MachNumber        float64 `json:"machNumber"`
	Altitude          float64 `json:"altitude"` // m, carried but not used by the cycle formulas
	StaticTemperature float64 `json:"staticTemperature"`
	StaticPressure    float64 `json:"staticPressure"`
}

// ComponentInputs holds the design parameters of the engine components.
type ComponentInputs struct {
	CompressorPressureRatio float64 `json:"compressorPressureRatio"`
	TurbineInletTemperature float64 `json:"turbineInletTemperature"`
}

// CycleResult is a snapshot of one design-point calculation. It is returned
// by value and never modified after Compute builds it.
type CycleResult struct {
	TotalTemperature0    float64 `json:"totalTemperature0"`
	TotalPressure0       float64 `json:"totalPressure0"`
	TotalTemperature3    float64 `json:"totalTemperature3"`
	TauLambda            float64 `json:"tauLambda"`
	TauC                 float64 `json:"tauC"`
	SpecificThrust       float64 `json:"specificThrust"`
	ThermalEfficiency    float64 `json:"thermalEfficiency"`
	PropulsiveEfficiency float64 `json:"propulsiveEfficiency"`

	// Atmospheric ratios relative to sea level and the true airspeed
	// (m/s) of the flight condition. Diagnostic only.
	Theta       float64 `json:"theta"`
	Delta       float64 `json:"delta"`
	FlightSpeed float64 `json:"flightSpeed"`
}

// PerformancePoint is one record of the thrust/efficiency chart.
// Efficiency is the thermal efficiency in percent.
type PerformancePoint struct {
	Name           string  `json:"name"`
	SpecificThrust float64 `json:"specificThrust"`
	Efficiency     float64 `json:"efficiency"`
}
