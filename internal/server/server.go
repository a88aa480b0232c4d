package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsumitate/nisa-calculator/internal/calculation"
	"github.com/tsumitate/nisa-calculator/internal/config"
	"github.com/tsumitate/nisa-calculator/internal/domain"
)

// Server exposes the calculation engines as a JSON API. It is a thin
// presentation-layer caller: it validates input, invokes the engines,
// and encodes results. The engines stay pure and stateless, so the
// handlers need no locking.
type Server struct {
	engine *calculation.Engine
	router chi.Router
}

// New creates a Server with its routes mounted.
func New(engine *calculation.Engine) *Server {
	s := &Server{engine: engine}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/presets", s.handlePresets)
		r.Post("/project", s.handleProject)
		r.Post("/scenarios", s.handleScenarios)
		r.Post("/income", s.handleIncome)
	})

	s.router = r
	return s
}

// Handler returns the mounted router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Presets())
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	params, ok := decodeSimulationParams(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Project(params))
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	params, ok := decodeSimulationParams(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Scenarios(params))
}

func (s *Server) handleIncome(w http.ResponseWriter, r *http.Request) {
	var params config.IncomeParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		errorResponse(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := config.ValidateIncomeParams(params); err != nil {
		errorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	net := calculation.NetIncome(params.GrossIncome)
	resp := map[string]any{
		"net_income":         net,
		"monthly_net_income": calculation.MonthlyNetIncome(net),
		"total_income":       calculation.TotalIncome(params.GrossIncome, params.Bonus, params.Years),
		"total_expense":      calculation.TotalExpense(params.MonthlyExpense, params.Years),
		"savings":            calculation.Savings(params.GrossIncome, params.Bonus, params.MonthlyExpense, params.Years),
		"savings_rate":       calculation.SavingsRate(params.GrossIncome, params.Bonus, params.MonthlyExpense),
		"yearly_data":        calculation.YearlyIncomeSeries(params.GrossIncome, params.Bonus, params.MonthlyExpense, params.Years),
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeSimulationParams(w http.ResponseWriter, r *http.Request) (domain.SimulationParams, bool) {
	var params domain.SimulationParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		errorResponse(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return params, false
	}
	if err := config.ValidateSimulationParams(params); err != nil {
		errorResponse(w, err.Error(), http.StatusBadRequest)
		return params, false
	}
	return params, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// errorResponse sends a JSON error body with the given status.
func errorResponse(w http.ResponseWriter, message string, statusCode int) {
	log.Printf("Error: %s (status %d)", message, statusCode)
	writeJSON(w, statusCode, map[string]string{"error": message})
}
