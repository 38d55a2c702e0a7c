package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// Server wires the simulation endpoints onto a chi router.
type Server struct {
	router chi.Router
}

// NewServer builds the router with all routes attached.
func NewServer() *Server {
	s := &Server{}
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/simulate", s.handleSimulate)
		r.Get("/policies", s.handlePolicies)
	})
	s.router = r
	return s
}

// Router returns the handler, mountable in tests or another mux.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	logrus.Infof("scheduling API listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	eng, err := sim.NewEngine(sim.Config{
		Policy:          req.Policy,
		Quantum:         req.Quantum,
		DispatchLatency: req.DispatchLatency,
	}, req.processes())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	res, err := eng.Run()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	logrus.Infof("simulated %d processes under %s in %d ticks",
		len(res.Processes), res.Policy, res.TotalTime)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePolicies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PoliciesResponse{Policies: sim.PolicyNames()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps simulation errors onto HTTP statuses: rejected inputs are
// 400s, runs that started but could not finish legally are 422s.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sim.ErrInvalidWorkload), errors.Is(err, sim.ErrBadConfig):
		return http.StatusBadRequest
	case errors.Is(err, sim.ErrPolicyViolation), errors.Is(err, sim.ErrStarvation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Errorf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	logrus.Warnf("request rejected (%d): %v", status, err)
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// requestLogger reports every request with its duration at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}
