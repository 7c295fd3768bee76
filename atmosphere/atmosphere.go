// Package atmosphere implements the ISA standard atmosphere for the
// troposphere and the isothermal lower stratosphere (0 to 20 km).
package atmosphere

import (
	"errors"
	"fmt"
	"math"

	"github.com/zax124/turbomachine-calculator/cycle"
	"github.com/zax124/turbomachine-calculator/utils"
)

const (
	G          = 9.80665  // m/s^2
	R          = 287.0528 // J/(kg*K)
	LapseRate  = 0.0065   // K/m
	SeaLevelT  = 288.15   // K
	SeaLevelP  = 101325.0 // Pa
	Tropopause = 11000.0  // m
	Ceiling    = 20000.0  // m

	StratosphereT = 216.65 // K
)

var ErrOutOfRange = errors.New("altitude out of range")

// tropopauseP is the pressure at 11 km.
var tropopauseP = SeaLevelP * math.Pow(StratosphereT/SeaLevelT, G/(R*LapseRate))

// Conditions are the static conditions at an altitude.
type Conditions struct {
	Altitude     float64 `json:"altitude"`     // m
	Temperature  float64 `json:"temperature"`  // K
	Celsius      float64 `json:"celsius"`      // °C
	Pressure     float64 `json:"pressure"`     // Pa
	Density      float64 `json:"density"`      // kg/m^3
	SpeedOfSound float64 `json:"speedOfSound"` // m/s
}

// Standard returns the ISA conditions at a geopotential altitude in meters.
func Standard(altitude float64) (Conditions, error) {
	if math.IsNaN(altitude) || altitude < 0 || altitude > Ceiling {
		return Conditions{}, fmt.Errorf("%w: %v m (valid 0..%v m)", ErrOutOfRange, altitude, Ceiling)
	}

	var t, p float64
	if altitude <= Tropopause {
		t = SeaLevelT - LapseRate*altitude
		p = SeaLevelP * math.Pow(t/SeaLevelT, G/(R*LapseRate))
	} else {
		t = StratosphereT
		p = tropopauseP * math.Exp(-G*(altitude-Tropopause)/(R*StratosphereT))
	}

	return Conditions{
		Altitude:     altitude,
		Temperature:  t,
		Celsius:      utils.KelvinToCelsius(t),
		Pressure:     p,
		Density:      p / (R * t),
		SpeedOfSound: utils.SpeedOfSound(t),
	}, nil
}

// FillFlight sets a zero static temperature or pressure from the ISA at the
// flight altitude. Values already given are kept.
func FillFlight(flight cycle.FlightInputs) (cycle.FlightInputs, error) {
	if flight.StaticTemperature != 0 && flight.StaticPressure != 0 {
		return flight, nil
	}
	c, err := Standard(flight.Altitude)
	if err != nil {
		return cycle.FlightInputs{}, err
	}
	if flight.StaticTemperature == 0 {
		flight.StaticTemperature = c.Temperature
	}
	if flight.StaticPressure == 0 {
		flight.StaticPressure = c.Pressure
	}
	return flight, nil
}
