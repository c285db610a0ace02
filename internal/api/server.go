// Package api serves the result of a completed backtest over HTTP for
// dashboards and ad-hoc inspection.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/quantview-lab/quantview/internal/backtest"
	"github.com/quantview-lab/quantview/internal/logger"
)

// Server exposes a read-only JSON view over one backtest result. The result is
// computed before the server starts and never changes while serving.
type Server struct {
	result *backtest.Result
	log    *logger.Logger
	router *mux.Router
}

// NewServer creates a server over a completed backtest result.
func NewServer(result *backtest.Result, log *logger.Logger) *Server {
	s := &Server{
		result: result,
		log:    log,
		router: mux.NewRouter(),
	}

	s.routes()

	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/report", s.handleReport).Methods(http.MethodGet)
	api.HandleFunc("/equity", s.handleEquity).Methods(http.MethodGet)
	api.HandleFunc("/signals", s.handleSignals).Methods(http.MethodGet)
	api.HandleFunc("/prices", s.handlePrices).Methods(http.MethodGet)
	api.HandleFunc("/result", s.handleResult).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
}

// Handler returns the root HTTP handler, usable directly with httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving HTTP on the given address.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("Serving backtest result", zap.String("addr", addr))

	server := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return server.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleReport(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.result.Report)
}

// equityPoint is one bar of the portfolio value series.
type equityPoint struct {
	Time             time.Time `json:"time"`
	TotalValue       float64   `json:"total_value"`
	Cash             float64   `json:"cash"`
	Holdings         float64   `json:"holdings"`
	CumulativeReturn float64   `json:"cumulative_return"`
}

func (s *Server) handleEquity(w http.ResponseWriter, _ *http.Request) {
	portfolio := s.result.Portfolio
	points := make([]equityPoint, portfolio.Len())

	for i := range points {
		points[i] = equityPoint{
			Time:             portfolio.Time[i],
			TotalValue:       portfolio.TotalValue[i],
			Cash:             portfolio.Cash[i],
			Holdings:         portfolio.Holdings[i],
			CumulativeReturn: portfolio.CumulativeReturn[i],
		}
	}

	s.writeJSON(w, points)
}

func (s *Server) handleSignals(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.result.Events)
}

func (s *Server) handlePrices(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.result.Prices)
}

func (s *Server) handleResult(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.result)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("Failed to encode response", zap.Error(err))
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
