package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/finwell/finance-service/internal/engine"
	"github.com/finwell/finance-service/internal/models"
	"github.com/finwell/finance-service/internal/repository"
	"github.com/finwell/finance-service/internal/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		ReportEmail bool   `json:"report_email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "username, email, and password are required")
		return
	}

	user, err := h.svc.Register(req.Username, req.Email, req.Password, req.ReportEmail)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// SaveSnapshot stores the caller's financial snapshot
func (h *Handler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	var snap models.FinancialSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		respondError(w, http.StatusBadRequest, "invalid snapshot body")
		return
	}

	if err := h.svc.SaveSnapshot(r.Context(), snap); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSnapshot returns the caller's stored snapshot
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.LoadSnapshot(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// stressLevel reads the optional stress query parameter (1-10).
func stressLevel(r *http.Request) int {
	level, err := strconv.Atoi(r.URL.Query().Get("stress"))
	if err != nil || level < 0 {
		return 0
	}
	return level
}

// GetInsights evaluates the rule battery for the caller's snapshot
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.svc.Insights(r.Context(), stressLevel(r))
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, insights)
}

// GetHealth scores the caller's snapshot
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	health, err := h.svc.Health(r.Context(), stressLevel(r))
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, health)
}

// Simulate runs a snapshot-driven projection
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var params models.SimulationParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid simulation parameters")
		return
	}

	result, err := h.svc.Simulate(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSnapshotNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrYearsOutOfRange):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// QuickSimulate runs the seed-baseline projection variant
func (h *Handler) QuickSimulate(w http.ResponseWriter, r *http.Request) {
	var params models.SimulationParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid simulation parameters")
		return
	}

	result, err := h.svc.QuickSimulate(params)
	if err != nil {
		if errors.Is(err, service.ErrYearsOutOfRange) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// CreateScenario saves a named parameter set
func (h *Handler) CreateScenario(w http.ResponseWriter, r *http.Request) {
	var params models.SimulationParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid scenario body")
		return
	}
	if params.Name == "" {
		respondError(w, http.StatusBadRequest, "scenario name is required")
		return
	}

	scenario, err := h.svc.SaveScenario(r.Context(), params)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, scenario)
}

// ListScenarios returns the caller's saved parameter sets
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.svc.ListScenarios(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, scenarios)
}

// CompoundInterest exposes the standalone compound-interest calculator
func (h *Handler) CompoundInterest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Principal    float64          `json:"principal"`
		AnnualRate   float64          `json:"annual_rate"`
		Years        int              `json:"years"`
		Contribution float64          `json:"contribution"`
		Frequency    models.Frequency `json:"frequency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid calculator body")
		return
	}

	balance := engine.CompoundInterest(req.Principal, req.AnnualRate, req.Years, req.Contribution, req.Frequency)
	respondJSON(w, http.StatusOK, map[string]float64{"final_balance": balance})
}

// LoanPayment exposes the standalone loan-payment calculator
func (h *Handler) LoanPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Principal  float64 `json:"principal"`
		AnnualRate float64 `json:"annual_rate"`
		Years      int     `json:"years"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid calculator body")
		return
	}

	payment := engine.LoanPayment(req.Principal, req.AnnualRate, req.Years)
	respondJSON(w, http.StatusOK, map[string]float64{"monthly_payment": payment})
}
