package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rgehrsitz/sharesplit/internal/config"
	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/rgehrsitz/sharesplit/internal/output"
)

// ErrorResponse is the body of every 4xx/5xx reply
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCalculate accepts a JSON CalculateRequest. Engine failures are
// reported in banners.errors with a 200; only unreadable input is a 400.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	scenario, err := s.decodeScenario(w, r)
	if err != nil {
		s.metrics.ObserveCalculation(string(domain.ModelNegotiated), OutcomeBadRequest, 0)
		s.writeError(w, http.StatusBadRequest, "calculation_failed", err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.calculate(r, scenario))
}

// handleCalculateForm accepts the calculator form's indexed name/role/paid fields
func (s *Server) handleCalculateForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.metrics.ObserveCalculation(string(domain.ModelNegotiated), OutcomeBadRequest, 0)
		s.writeError(w, http.StatusBadRequest, "calculation_failed", fmt.Errorf("reading form: %w", err))
		return
	}

	scenario, err := config.ParseForm(r.PostForm)
	if err != nil {
		model := domain.ParseAllocationModel(r.PostForm.Get("property_model"))
		s.metrics.ObserveCalculation(string(model), OutcomeBadRequest, 0)
		s.writeError(w, http.StatusBadRequest, "calculation_failed", err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.calculate(r, scenario))
}

// handleCompare runs both allocation models over one JSON request
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	scenario, err := s.decodeScenario(w, r)
	if err != nil {
		s.metrics.ObserveComparison(OutcomeBadRequest)
		s.writeError(w, http.StatusBadRequest, "comparison_failed", err)
		return
	}

	compSet, err := s.compare.Compare(r.Context(), scenario)
	if err != nil {
		s.metrics.ObserveComparison(OutcomeRejected)
		s.writeError(w, http.StatusServiceUnavailable, "comparison_failed", err)
		return
	}
	s.metrics.ObserveComparison(OutcomeSuccess)
	s.writeJSON(w, http.StatusOK, compSet)
}

func (s *Server) decodeScenario(w http.ResponseWriter, r *http.Request) (*domain.Scenario, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return nil, fmt.Errorf("reading body: %w", err)
	}

	req, err := config.DecodeCalculateRequest(body)
	if err != nil {
		return nil, err
	}
	return req.Scenario()
}

func (s *Server) calculate(r *http.Request, scenario *domain.Scenario) output.Payload {
	id := CalculationIDFrom(r.Context())
	dist, err := s.engine.Compute(scenario)

	model := domain.ParseAllocationModel(string(scenario.Params.Model))
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeRejected
		s.log.Warn().Err(err).Str("calculation_id", id).Str("model", string(model)).Msg("Calculation rejected")
	}
	s.metrics.ObserveCalculation(string(model), outcome, len(scenario.Participants))

	report := output.NewReport(scenario, dist, err)
	report.CalculationID = id
	return output.BuildPayload(report)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code string, err error) {
	s.writeJSON(w, status, ErrorResponse{
		Error:  code,
		Detail: domain.BannerMessage(err),
	})
}
