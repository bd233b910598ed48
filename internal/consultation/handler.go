package consultation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"smart-hospital/internal/report"
)

type Handler struct {
	svc     *Service
	reports *report.Service
}

func NewHandler(svc *Service, reports *report.Service) *Handler {
	return &Handler{svc: svc, reports: reports}
}

func (h *Handler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	conv, opening := h.svc.Create()
	writeJSON(w, http.StatusCreated, map[string]string{
		"consultation_id": conv.ID.String(),
		"message":         opening,
	})
}

type chatRequest struct {
	ConsultationID string `json:"consultation_id"`
	Message        string `json:"message"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	id, err := uuid.Parse(req.ConsultationID)
	if err != nil {
		http.Error(w, "Invalid consultation ID", http.StatusBadRequest)
		return
	}

	reply, state, err := h.svc.Chat(r.Context(), id, req.Message)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"response": reply,
		"state":    string(state),
	})
}

// Report renders the PDF summary of a completed consultation.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid consultation ID", http.StatusBadRequest)
		return
	}
	conv, err := h.svc.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	conv.mu.Lock()
	summary := report.Summary{
		ConsultationID: conv.ID,
		PatientName:    conv.Session.Patient.Name,
		Age:            conv.Session.Patient.Age,
		Gender:         conv.Session.Patient.Gender,
		Symptoms:       conv.Session.PositiveSymptoms(),
		Predictions:    conv.Session.LastResult,
		GeneratedAt:    time.Now(),
	}
	conv.mu.Unlock()

	if len(summary.Predictions) == 0 {
		http.Error(w, "Consultation has no completed prediction", http.StatusConflict)
		return
	}

	pdf, err := h.reports.Render(summary)
	if err != nil {
		http.Error(w, "Report generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=consultation_%s.pdf", conv.ID))
	w.Write(pdf)
}

// PredictForm is the non-conversational path: explicit symptoms and
// optional vitals in, ranked predictions out.
func (h *Handler) PredictForm(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	result, err := h.svc.Predict(r.Context(), req)
	if err != nil {
		http.Error(w, "Prediction failed: "+err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/consultation", h.CreateConsultation)
	r.Post("/consultation/chat", h.Chat)
	r.Get("/consultation/{id}/report", h.Report)
	r.Post("/predict", h.PredictForm)
}
