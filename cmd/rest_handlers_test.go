package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zax124/turbomachine-calculator/atmosphere"
	"github.com/zax124/turbomachine-calculator/cycle"
)

const cruiseBody = `{
	"flight": {"machNumber": 0.8, "altitude": 11000, "staticTemperature": 216.65, "staticPressure": 23842.3},
	"component": {"compressorPressureRatio": 12, "turbineInletTemperature": 1800}
}`

func do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	return rec
}

func TestComputeHandler(t *testing.T) {
	rec := do(t, http.MethodPost, "/cycle/compute", cruiseBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var res cycle.CycleResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.InDelta(t, 244.38, res.TotalTemperature0, 0.01)
	assert.InDelta(t, 19.90, res.SpecificThrust, 0.5)
	assert.InDelta(t, 236.1, res.FlightSpeed, 0.1)
}

func TestComputeHandlerZeroMach(t *testing.T) {
	body := strings.Replace(cruiseBody, `"machNumber": 0.8`, `"machNumber": 0`, 1)
	rec := do(t, http.MethodPost, "/cycle/compute", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "machNumber")
}

func TestComputeHandlerBadJSON(t *testing.T) {
	rec := do(t, http.MethodPost, "/cycle/compute", `{"flight": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComputeHandlerStandardAtmosphere(t *testing.T) {
	body := `{
		"flight": {"machNumber": 0.8, "altitude": 11000},
		"component": {"compressorPressureRatio": 12, "turbineInletTemperature": 1800},
		"standardAtmosphere": true
	}`
	rec := do(t, http.MethodPost, "/cycle/compute", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res cycle.CycleResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.InDelta(t, 216.65*1.128, res.TotalTemperature0, 0.01)
}

func TestPreflight(t *testing.T) {
	rec := do(t, http.MethodOptions, "/cycle/compute", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestFormHandler(t *testing.T) {
	body := `{"M0": "0.8", "h": "11000", "T0": "216.65", "P0": "23842.3", "πc": "12", "Tt4": "1800"}`
	rec := do(t, http.MethodPost, "/cycle/form", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res cycle.CycleResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.InDelta(t, 0.837, res.ThermalEfficiency, 0.001)

	rec = do(t, http.MethodPost, "/cycle/form", `{"M0": "fast", "T0": "216.65", "P0": "23842.3", "πc": "12", "Tt4": "1800"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPerformanceHandler(t *testing.T) {
	rec := do(t, http.MethodPost, "/cycle/performance", cruiseBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var points []cycle.PerformancePoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 1)
	assert.Equal(t, "Design Point", points[0].Name)
	assert.InDelta(t, 83.7, points[0].Efficiency, 0.1)
}

func TestSweepHandler(t *testing.T) {
	body := strings.Replace(cruiseBody, "\n}", `, "from": 4, "to": 12, "step": 4}`, 1)
	rec := do(t, http.MethodPost, "/cycle/sweep", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var points []cycle.PerformancePoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 3)
	assert.Equal(t, "πc=8", points[1].Name)

	body = strings.Replace(cruiseBody, "\n}", `, "from": 4, "to": 12, "step": 0}`, 1)
	rec = do(t, http.MethodPost, "/cycle/sweep", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = strings.Replace(cruiseBody, "\n}", `, "from": 1, "to": 1e30, "step": 1}`, 1)
	rec = do(t, http.MethodPost, "/cycle/sweep", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAtmosphereHandler(t *testing.T) {
	rec := do(t, http.MethodGet, "/atmosphere/11000", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var c atmosphere.Conditions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.InDelta(t, 216.65, c.Temperature, 0.01)
	assert.InDelta(t, -56.5, c.Celsius, 0.01)

	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/atmosphere/high", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, "/atmosphere/50000", "").Code)
}
