package handler

import (
	"errors"
	"net/http"

	"mindtrack/internal/service"
)

// StatisticsHandler serves public aggregate statistics over the survey
// dataset. No authentication required.
type StatisticsHandler struct {
	stats *service.StatsService
}

func NewStatisticsHandler(stats *service.StatsService) *StatisticsHandler {
	return &StatisticsHandler{stats: stats}
}

// Overview handles GET /api/statistics/overview
func (h *StatisticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.Overview(r.Context())
	if err != nil {
		h.writeStatsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// Demographics handles GET /api/statistics/demographics
func (h *StatisticsHandler) Demographics(w http.ResponseWriter, r *http.Request) {
	distributions, err := h.stats.Demographics(r.Context())
	if err != nil {
		h.writeStatsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, distributions)
}

// MentalHealth handles GET /api/statistics/mental-health
func (h *StatisticsHandler) MentalHealth(w http.ResponseWriter, r *http.Request) {
	distributions, err := h.stats.MentalHealth(r.Context())
	if err != nil {
		h.writeStatsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, distributions)
}

// RiskFactors handles GET /api/statistics/risk-factors
func (h *StatisticsHandler) RiskFactors(w http.ResponseWriter, r *http.Request) {
	distributions, err := h.stats.RiskFactors(r.Context())
	if err != nil {
		h.writeStatsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, distributions)
}

// Categories handles GET /api/statistics/categories
func (h *StatisticsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": h.stats.Categories()})
}

func (h *StatisticsHandler) writeStatsError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNoSurveyData) {
		writeError(w, http.StatusNotFound, "no survey data available")
		return
	}
	writeError(w, http.StatusInternalServerError, "failed to compute statistics")
}
