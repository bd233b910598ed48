package hospital

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the record-keeping CRUD surface.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type createPatientRequest struct {
	Name    string  `json:"name"`
	Age     int     `json:"age"`
	Gender  string  `json:"gender"`
	Contact *string `json:"contact,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req createPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Age <= 0 {
		http.Error(w, "name and a positive age are required", http.StatusBadRequest)
		return
	}

	id, err := h.repo.AddPatient(r.Context(), req.Name, req.Age, req.Gender, req.Contact, req.Address)
	if err != nil {
		http.Error(w, "Failed to add patient", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"patient_id": id})
}

func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	patients, err := h.repo.GetPatients(r.Context(), limit)
	if err != nil {
		http.Error(w, "Failed to fetch patients", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, patients)
}

func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid patient ID", http.StatusBadRequest)
		return
	}
	patient, err := h.repo.GetPatientByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Patient not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, patient)
}

func (h *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid patient ID", http.StatusBadRequest)
		return
	}
	var upd PatientUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.repo.UpdatePatient(r.Context(), id, upd); err != nil {
		http.Error(w, "Failed to update patient: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) PatientHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid patient ID", http.StatusBadRequest)
		return
	}
	records, err := h.repo.GetPatientHistory(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to fetch history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

type createDoctorRequest struct {
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Contact        *string `json:"contact,omitempty"`
	Email          *string `json:"email,omitempty"`
}

func (h *Handler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req createDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Specialization == "" {
		http.Error(w, "name and specialization are required", http.StatusBadRequest)
		return
	}
	id, err := h.repo.AddDoctor(r.Context(), req.Name, req.Specialization, req.Contact, req.Email)
	if err != nil {
		http.Error(w, "Failed to add doctor", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"doctor_id": id})
}

func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.repo.GetDoctors(r.Context(), r.URL.Query().Get("specialization"))
	if err != nil {
		http.Error(w, "Failed to fetch doctors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, doctors)
}

type scheduleAppointmentRequest struct {
	PatientID int64     `json:"patient_id"`
	DoctorID  int64     `json:"doctor_id"`
	Date      time.Time `json:"appointment_date"`
	Notes     *string   `json:"notes,omitempty"`
}

func (h *Handler) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	var req scheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	id, err := h.repo.ScheduleAppointment(r.Context(), req.PatientID, req.DoctorID, req.Date, req.Notes)
	if err != nil {
		http.Error(w, "Failed to schedule appointment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"appointment_id": id})
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	filter := AppointmentFilter{Status: r.URL.Query().Get("status")}
	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.From = &t
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.To = &t
		}
	}
	appointments, err := h.repo.GetAppointments(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to fetch appointments", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, appointments)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid appointment ID", http.StatusBadRequest)
		return
	}
	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.repo.UpdateAppointmentStatus(r.Context(), id, req.Status); err != nil {
		http.Error(w, "Failed to update status: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.DashboardStats(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch dashboard stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/patients", h.CreatePatient)
	r.Get("/patients", h.ListPatients)
	r.Get("/patients/{id}", h.GetPatient)
	r.Patch("/patients/{id}", h.UpdatePatient)
	r.Get("/patients/{id}/history", h.PatientHistory)
	r.Post("/doctors", h.CreateDoctor)
	r.Get("/doctors", h.ListDoctors)
	r.Post("/appointments", h.ScheduleAppointment)
	r.Get("/appointments", h.ListAppointments)
	r.Patch("/appointments/{id}/status", h.UpdateAppointmentStatus)
	r.Get("/dashboard", h.Dashboard)
}
