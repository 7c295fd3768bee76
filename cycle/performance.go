package cycle

import (
	"fmt"
	"math"
	"strconv"
)

const DesignPointName = "Design Point"

// DesignPoint turns a result into the chart record of the design point.
func DesignPoint(res CycleResult) PerformancePoint {
	return point(DesignPointName, res)
}

func point(name string, res CycleResult) PerformancePoint {
	return PerformancePoint{
		Name:           name,
		SpecificThrust: res.SpecificThrust,
		Efficiency:     res.ThermalEfficiency * 100,
	}
}

// Sweep recomputes the cycle for each compressor pressure ratio, keeping the
// other inputs fixed. Points come back in the order of ratios. The first
// ratio that fails aborts the sweep.
func Sweep(flight FlightInputs, component ComponentInputs, ratios []float64) ([]PerformancePoint, error) {
	points := make([]PerformancePoint, 0, len(ratios))
	for _, pic := range ratios {
		c := component
		c.CompressorPressureRatio = pic
		res, err := Compute(flight, c)
		if err != nil {
			return nil, fmt.Errorf("sweep at πc=%v: %w", pic, err)
		}
		points = append(points, point("πc="+strconv.FormatFloat(pic, 'g', -1, 64), res))
	}
	return points, nil
}

// maxSweepPoints bounds the grid PressureRatios will build.
const maxSweepPoints = 1000

// PressureRatios returns from, from+step, ... up to and including to.
func PressureRatios(from, to, step float64) ([]float64, error) {
	for _, f := range []struct {
		name  string
		value float64
	}{{"from", from}, {"to", to}, {"step", step}} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return nil, invalid(f.name, f.value, "not a finite number")
		}
	}
	if step <= 0 {
		return nil, invalid("step", step, "must be greater than zero")
	}
	if to < from {
		return nil, invalid("to", to, "must not be below from")
	}
	// Checked as a float: a huge or infinite span has no int value.
	span := math.Floor((to-from)/step + 1e-9)
	if !(span < maxSweepPoints) {
		return nil, invalid("step", step, fmt.Sprintf("grid exceeds %d points", maxSweepPoints))
	}
	n := int(span) + 1
	ratios := make([]float64, n)
	for i := range ratios {
		ratios[i] = from + float64(i)*step
	}
	return ratios, nil
}
