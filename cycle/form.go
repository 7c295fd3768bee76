package cycle

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Form is the raw text entered in the calculator's input tab. Only M0, h,
// T0, P0, πc and Tt4 feed the cycle; the loss and efficiency fields are
// accepted so a full form round-trips, but they are not used.
type Form struct {
	M0 string `json:"M0"`
	H  string `json:"h"`
	T0 string `json:"T0"`
	P0 string `json:"P0"`

	PiDMax string `json:"πdmax"`
	PiB    string `json:"πb"`
	PiN    string `json:"πn"`
	PiC    string `json:"πc"`

	Ec string `json:"ec"`
	Et string `json:"et"`
	Ef string `json:"ef"`

	Tt4 string `json:"Tt4"`
	Tt7 string `json:"Tt7"`
}

// ParseForm converts the form text into cycle inputs. A blank altitude is
// read as 0; every other required field must hold a number.
func ParseForm(f Form) (FlightInputs, ComponentInputs, error) {
	var (
		flight    FlightInputs
		component ComponentInputs
		err       error
	)
	if flight.MachNumber, err = parseField("machNumber", f.M0, false); err != nil {
		return FlightInputs{}, ComponentInputs{}, err
	}
	if flight.Altitude, err = parseField("altitude", f.H, true); err != nil {
		return FlightInputs{}, ComponentInputs{}, err
	}
	if flight.StaticTemperature, err = parseField("staticTemperature", f.T0, false); err != nil {
		return FlightInputs{}, ComponentInputs{}, err
	}
	if flight.StaticPressure, err = parseField("staticPressure", f.P0, false); err != nil {
		return FlightInputs{}, ComponentInputs{}, err
	}
	if component.CompressorPressureRatio, err = parseField("compressorPressureRatio", f.PiC, false); err != nil {
		return FlightInputs{}, ComponentInputs{}, err
	}
	if component.TurbineInletTemperature, err = parseField("turbineInletTemperature", f.Tt4, false); err != nil {
		return FlightInputs{}, ComponentInputs{}, err
	}
	return flight, component, nil
}

// ComputeForm parses the form and runs the cycle on it.
func ComputeForm(f Form) (CycleResult, error) {
	flight, component, err := ParseForm(f)
	if err != nil {
		return CycleResult{}, err
	}
	return Compute(flight, component)
}

func parseField(name, text string, optional bool) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		if optional {
			return 0, nil
		}
		return 0, &InputError{Field: name, Value: math.NaN(), Reason: "missing value"}
	}
	v, err := strconv.ParseFloat(text, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, &InputError{Field: name, Value: v, Reason: "out of range: " + strconv.Quote(text)}
	}
	if err != nil {
		return 0, &InputError{Field: name, Value: math.NaN(), Reason: "not a number: " + strconv.Quote(text)}
	}
	return v, nil
}
