package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dps.app/disease-prediction/internal/core"
	"dps.app/disease-prediction/internal/model"
)

type APIHandler struct {
	predictions *core.PredictionService
	history     *core.HistoryService
	feedback    *core.FeedbackService
	log         *zap.SugaredLogger
}

func NewAPIHandler(predictions *core.PredictionService, history *core.HistoryService, feedback *core.FeedbackService, log *zap.SugaredLogger) *APIHandler {
	return &APIHandler{
		predictions: predictions,
		history:     history,
		feedback:    feedback,
		log:         log,
	}
}

// outcomeResponse wraps a pipeline outcome with the error/warning strings the
// client should display.
type outcomeResponse struct {
	core.Outcome
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

func (h *APIHandler) PredictDiabetesHandler(w http.ResponseWriter, r *http.Request) {
	var req core.DiabetesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	h.writeOutcome(w, h.predictions.PredictDiabetes(r.Context(), req))
}

func (h *APIHandler) PredictHeartHandler(w http.ResponseWriter, r *http.Request) {
	var req core.HeartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	h.writeOutcome(w, h.predictions.PredictHeart(r.Context(), req))
}

// writeOutcome maps the pipeline outcome to a response. A storage failure is
// a 500 but still carries the diagnosis; a notification failure is a 200 with
// a warning, since the record was already persisted.
func (h *APIHandler) writeOutcome(w http.ResponseWriter, out core.Outcome) {
	resp := outcomeResponse{Outcome: out}

	if out.Err == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	var validationErr *core.ValidationError
	var inputErr *model.InvalidInputError
	var storageErr *core.StorageError
	var notifyErr *core.NotificationError

	switch {
	case errors.As(out.Err, &validationErr), errors.As(out.Err, &inputErr):
		resp.Error = out.Err.Error()
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.As(out.Err, &storageErr):
		resp.Error = out.Err.Error()
		writeJSON(w, http.StatusInternalServerError, resp)
	case errors.As(out.Err, &notifyErr):
		resp.Warning = out.Err.Error()
		writeJSON(w, http.StatusOK, resp)
	default:
		h.log.Errorw("prediction failed", "disease", out.Disease, "error", out.Err)
		resp.Error = "Prediction failed. Please try again."
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}

func (h *APIHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	disease, ok := diseaseFromURL(w, r)
	if !ok {
		return
	}
	email := r.URL.Query().Get("email")

	if disease == model.DiseaseDiabetes {
		records, err := h.history.DiabetesHistory(r.Context(), email)
		if err != nil {
			h.writeHistoryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"records": records, "count": len(records)})
		return
	}

	records, err := h.history.HeartHistory(r.Context(), email)
	if err != nil {
		h.writeHistoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": records, "count": len(records)})
}

func (h *APIHandler) HistoryExportHandler(w http.ResponseWriter, r *http.Request) {
	disease, ok := diseaseFromURL(w, r)
	if !ok {
		return
	}
	email := r.URL.Query().Get("email")

	var csvData []byte
	var filename string
	var err error

	if disease == model.DiseaseDiabetes {
		records, historyErr := h.history.DiabetesHistory(r.Context(), email)
		if historyErr == nil {
			csvData, historyErr = core.DiabetesCSV(records)
		}
		err = historyErr
		filename = "diabetes_history.csv"
	} else {
		records, historyErr := h.history.HeartHistory(r.Context(), email)
		if historyErr == nil {
			csvData, historyErr = core.HeartCSV(records)
		}
		err = historyErr
		filename = "heart_disease_history.csv"
	}
	if err != nil {
		h.writeHistoryError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(csvData)
}

func (h *APIHandler) HistoryStatsHandler(w http.ResponseWriter, r *http.Request) {
	disease, ok := diseaseFromURL(w, r)
	if !ok {
		return
	}
	email := r.URL.Query().Get("email")

	var stats core.HistoryStats
	var err error
	if disease == model.DiseaseDiabetes {
		stats, err = h.history.DiabetesStats(r.Context(), email)
	} else {
		stats, err = h.history.HeartStats(r.Context(), email)
	}
	if err != nil {
		h.writeHistoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *APIHandler) ListAllHandler(w http.ResponseWriter, r *http.Request) {
	disease, ok := diseaseFromURL(w, r)
	if !ok {
		return
	}

	if disease == model.DiseaseDiabetes {
		records, err := h.history.AllDiabetes(r.Context())
		if err != nil {
			h.writeHistoryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"records": records, "count": len(records)})
		return
	}

	records, err := h.history.AllHeart(r.Context())
	if err != nil {
		h.writeHistoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": records, "count": len(records)})
}

func (h *APIHandler) FeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var req core.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.feedback.Submit(r.Context(), req); err != nil {
		var validationErr *core.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Errorw("feedback submission failed", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to submit feedback. Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *APIHandler) writeHistoryError(w http.ResponseWriter, err error) {
	var validationErr *core.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.log.Errorw("history lookup failed", "error", err)
	writeError(w, http.StatusInternalServerError, "Failed to retrieve history")
}

func diseaseFromURL(w http.ResponseWriter, r *http.Request) (model.Disease, bool) {
	switch chi.URLParam(r, "disease") {
	case "diabetes":
		return model.DiseaseDiabetes, true
	case "heart":
		return model.DiseaseHeart, true
	default:
		writeError(w, http.StatusNotFound, "Unknown disease type")
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
