// Package cycle computes the design point of an ideal air-breathing
// turbojet: stagnation conditions at the flight condition and after the
// compressor, temperature ratios, specific thrust and the thermal and
// propulsive efficiencies.
package cycle

import (
	"math"

	"github.com/zax124/turbomachine-calculator/utils"
)

const (
	Cp    = 1005.0 // J/(kg*K)
	Gamma = 1.4
	R     = 287.0 // J/(kg*K)

	SeaLevelTemperature = 288.15   // K
	SeaLevelPressure    = 101325.0 // Pa

	// (γ-1)/γ and γ/(γ-1) for γ = 1.4, rounded as used by the cycle.
	compressionExponent   = 0.286
	totalPressureExponent = 3.5
)

// Compute runs the design-point cycle for one set of inputs. It either
// returns a fully populated result or a zero result and an error wrapping
// ErrInvalidInput.
func Compute(flight FlightInputs, component ComponentInputs) (CycleResult, error) {
	if err := validate(flight, component); err != nil {
		return CycleResult{}, err
	}

	M0 := flight.MachNumber
	T0 := flight.StaticTemperature
	P0 := flight.StaticPressure
	pic := component.CompressorPressureRatio
	Tt4 := component.TurbineInletTemperature

	theta := T0 / SeaLevelTemperature
	delta := P0 / SeaLevelPressure

	// Total conditions
	ram := 1 + 0.2*M0*M0 // 1 + (γ-1)/2 * M0²
	Tt0 := T0 * ram
	Pt0 := P0 * math.Pow(ram, totalPressureExponent)

	Tt3 := Tt0 * math.Pow(pic, compressionExponent)

	res := CycleResult{
		TotalTemperature0:    Tt0,
		TotalPressure0:       Pt0,
		TotalTemperature3:    Tt3,
		TauLambda:            Tt4 / Tt0,
		TauC:                 Tt3 / Tt0,
		SpecificThrust:       specificThrust(M0, Tt4, Tt0),
		ThermalEfficiency:    thermalEfficiency(Tt4, Tt3, Tt0),
		PropulsiveEfficiency: propulsiveEfficiency(M0),
		Theta:                theta,
		Delta:                delta,
		FlightSpeed:          utils.FlightSpeed(M0, T0),
	}
	if err := checkFinite(res); err != nil {
		return CycleResult{}, err
	}
	return res, nil
}

func specificThrust(M0, Tt4, Tt0 float64) float64 {
	return Cp * (Tt4 - Tt0) / (Gamma * R * Tt0 * M0)
}

func thermalEfficiency(Tt4, Tt3, Tt0 float64) float64 {
	return (Tt4 - Tt3) / (Tt4 - Tt0)
}

func propulsiveEfficiency(M0 float64) float64 {
	return 2 / (1 + M0)
}

func validate(flight FlightInputs, component ComponentInputs) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"machNumber", flight.MachNumber},
		{"altitude", flight.Altitude},
		{"staticTemperature", flight.StaticTemperature},
		{"staticPressure", flight.StaticPressure},
		{"compressorPressureRatio", component.CompressorPressureRatio},
		{"turbineInletTemperature", component.TurbineInletTemperature},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid(f.name, f.value, "not a finite number")
		}
	}

	switch {
	case flight.MachNumber <= 0:
		return invalid("machNumber", flight.MachNumber, "must be greater than zero")
	case flight.StaticTemperature <= 0:
		return invalid("staticTemperature", flight.StaticTemperature, "must be greater than zero")
	case flight.StaticPressure <= 0:
		return invalid("staticPressure", flight.StaticPressure, "must be greater than zero")
	case component.CompressorPressureRatio <= 0:
		return invalid("compressorPressureRatio", component.CompressorPressureRatio, "must be greater than zero")
	}
	return nil
}

// checkFinite catches results that valid-looking inputs can still produce,
// e.g. Tt4 == Tt0 in the thermal efficiency.
func checkFinite(res CycleResult) error {
	outputs := []struct {
		name  string
		value float64
	}{
		{"totalTemperature0", res.TotalTemperature0},
		{"totalPressure0", res.TotalPressure0},
		{"totalTemperature3", res.TotalTemperature3},
		{"tauLambda", res.TauLambda},
		{"tauC", res.TauC},
		{"specificThrust", res.SpecificThrust},
		{"thermalEfficiency", res.ThermalEfficiency},
		{"propulsiveEfficiency", res.PropulsiveEfficiency},
		{"theta", res.Theta},
		{"delta", res.Delta},
		{"flightSpeed", res.FlightSpeed},
	}
	for _, o := range outputs {
		if math.IsNaN(o.value) || math.IsInf(o.value, 0) {
			return invalid(o.name, o.value, "result is not finite")
		}
	}
	return nil
}
