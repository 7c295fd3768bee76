package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zax124/turbomachine-calculator/atmosphere"
	"github.com/zax124/turbomachine-calculator/cycle"
	"github.com/zax124/turbomachine-calculator/metrics"
)

// computeRequest carries already-parsed inputs. With StandardAtmosphere set,
// a zero static temperature or pressure is taken from the ISA at the flight
// altitude.
type computeRequest struct {
	Flight             cycle.FlightInputs    `json:"flight"`
	Component          cycle.ComponentInputs `json:"component"`
	StandardAtmosphere bool                  `json:"standardAtmosphere"`
}

type sweepRequest struct {
	computeRequest
	From float64 `json:"from"`
	To   float64 `json:"to"`
	Step float64 `json:"step"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/cycle/compute", computeHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/cycle/form", formHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/cycle/performance", performanceHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/cycle/sweep", sweepHandler).Methods("POST", "OPTIONS")
	router.HandleFunc("/atmosphere/{altitude}", atmosphereHandler).Methods("GET")
	return router
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

// preflight writes the CORS headers and reports whether the request was an
// OPTIONS preflight that has already been answered.
func preflight(w http.ResponseWriter, r *http.Request) bool {
	setCORSHeaders(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, cycle.ErrInvalidInput) || errors.Is(err, atmosphere.ErrOutOfRange) {
		status = http.StatusBadRequest
		metrics.RecordFailure()
	}
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON payload"})
		return false
	}
	return true
}

func (req computeRequest) compute() (cycle.CycleResult, error) {
	flight := req.Flight
	if req.StandardAtmosphere {
		var err error
		if flight, err = atmosphere.FillFlight(flight); err != nil {
			return cycle.CycleResult{}, err
		}
	}
	return cycle.Compute(flight, req.Component)
}

func computeHandler(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}
	var req computeRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := req.compute()
	if err != nil {
		writeError(w, r, err)
		return
	}
	metrics.RecordResult(res)
	writeJSON(w, http.StatusOK, res)
}

func formHandler(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}
	var form cycle.Form
	if !decode(w, r, &form) {
		return
	}
	res, err := cycle.ComputeForm(form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	metrics.RecordResult(res)
	writeJSON(w, http.StatusOK, res)
}

func performanceHandler(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}
	var req computeRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := req.compute()
	if err != nil {
		writeError(w, r, err)
		return
	}
	metrics.RecordResult(res)
	writeJSON(w, http.StatusOK, []cycle.PerformancePoint{cycle.DesignPoint(res)})
}

func sweepHandler(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}
	var req sweepRequest
	if !decode(w, r, &req) {
		return
	}
	ratios, err := cycle.PressureRatios(req.From, req.To, req.Step)
	if err != nil {
		writeError(w, r, err)
		return
	}
	flight := req.Flight
	if req.StandardAtmosphere {
		if flight, err = atmosphere.FillFlight(flight); err != nil {
			writeError(w, r, err)
			return
		}
	}
	points, err := cycle.Sweep(flight, req.Component, ratios)
	if err != nil {
		writeError(w, r, err)
		return
	}
	metrics.RecordPoints(points)
	writeJSON(w, http.StatusOK, points)
}

func atmosphereHandler(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	altitude, err := strconv.ParseFloat(mux.Vars(r)["altitude"], 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid altitude"})
		return
	}
	c, err := atmosphere.Standard(altitude)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
