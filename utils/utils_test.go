package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperatureConversion(t *testing.T) {
	assert.InDelta(t, 15.0, KelvinToCelsius(288.15), 1e-9)
	assert.InDelta(t, -56.5, KelvinToCelsius(216.65), 1e-9)
}

func TestSpeedOfSound(t *testing.T) {
	assert.InDelta(t, 340.3, SpeedOfSound(288.15), 0.1)
	assert.InDelta(t, 295.1, SpeedOfSound(216.65), 0.1)
	assert.Zero(t, SpeedOfSound(0))
	assert.Zero(t, SpeedOfSound(-5))
}

func TestFlightSpeed(t *testing.T) {
	assert.InDelta(t, 236.1, FlightSpeed(0.8, 216.65), 0.1)
	assert.InDelta(t, 340.3, FlightSpeed(1, 288.15), 0.1)
	assert.Zero(t, FlightSpeed(0.8, 0))
}
