package utils

import (
	"math"
)

const (
	gamma = 1.4
	rAir  = 287.05 // J/(kg*K)
)

func KelvinToCelsius(kelvin float64) float64 {
	return kelvin - 273.15
}

// SpeedOfSound returns the speed of sound (m/s) at a temperature in Kelvin.
func SpeedOfSound(tempK float64) float64 {
	if tempK <= 0 {
		return 0
	}
	return math.Sqrt(gamma * rAir * tempK)
}

// FlightSpeed returns the true airspeed (m/s) for a Mach number at a static
// temperature in Kelvin.
func FlightSpeed(mach, tempK float64) float64 {
	return mach * SpeedOfSound(tempK)
}
