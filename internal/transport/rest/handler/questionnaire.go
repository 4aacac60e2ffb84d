package handler

import (
	"encoding/json"
	"net/http"

	"mindtrack/internal/service"
	"mindtrack/internal/transport/rest/middleware"
)

// QuestionnaireHandler serves questionnaire submission and history.
type QuestionnaireHandler struct {
	questionnaires *service.QuestionnaireService
}

func NewQuestionnaireHandler(questionnaires *service.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaires: questionnaires}
}

// Submit handles POST /api/questionnaire/submit. Only malformed JSON is
// rejected; unknown or missing fields are absorbed by the engine's
// defaults so partial questionnaires still score.
func (h *QuestionnaireHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.questionnaires.Submit(r.Context(), userID, raw)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to process questionnaire")
		return
	}

	writeJSON(w, http.StatusCreated, assessment)
}

// History handles GET /api/questionnaire/history
func (h *QuestionnaireHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	responses, err := h.questionnaires.History(r.Context(), userID, queryInt(r, "limit", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	writeJSON(w, http.StatusOK, responses)
}
