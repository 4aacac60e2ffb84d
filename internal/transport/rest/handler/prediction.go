package handler

import (
	"errors"
	"net/http"

	"mindtrack/internal/service"
	"mindtrack/internal/transport/rest/middleware"
)

// PredictionHandler serves assessment history, trends and insights.
type PredictionHandler struct {
	predictions *service.PredictionService
}

func NewPredictionHandler(predictions *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictions: predictions}
}

// History handles GET /api/predictions/history
func (h *PredictionHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	assessments, err := h.predictions.History(r.Context(), userID, queryInt(r, "limit", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	writeJSON(w, http.StatusOK, assessments)
}

// Latest handles GET /api/predictions/latest
func (h *PredictionHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	assessment, err := h.predictions.Latest(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoAssessments) {
			writeError(w, http.StatusNotFound, "no assessments found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load latest assessment")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Trends handles GET /api/predictions/trends?days=N
func (h *PredictionHandler) Trends(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	days := queryInt(r, "days", 30)
	if days <= 0 {
		writeError(w, http.StatusBadRequest, "days must be positive")
		return
	}

	report, err := h.predictions.Trends(r.Context(), userID, days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to analyze trends")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Insights handles GET /api/predictions/insights
func (h *PredictionHandler) Insights(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	summary, err := h.predictions.Insights(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate insights")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
