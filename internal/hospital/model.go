// Package hospital is the record-keeping layer: patients, doctors,
// appointments and medical records, backed by Postgres or SQLite.
package hospital

import "time"

type Patient struct {
	ID        int64     `json:"patient_id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Contact   *string   `json:"contact,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PatientUpdate enumerates the optional fields of a partial patient
// update; nil fields are left untouched.
type PatientUpdate struct {
	Name    *string `json:"name,omitempty"`
	Age     *int    `json:"age,omitempty"`
	Gender  *string `json:"gender,omitempty"`
	Contact *string `json:"contact,omitempty"`
	Address *string `json:"address,omitempty"`
}

type Doctor struct {
	ID             int64     `json:"doctor_id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Contact        *string   `json:"contact,omitempty"`
	Email          *string   `json:"email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type Appointment struct {
	ID        int64     `json:"appointment_id"`
	PatientID int64     `json:"patient_id"`
	DoctorID  int64     `json:"doctor_id"`
	Date      time.Time `json:"appointment_date"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Joined display fields, populated by list queries.
	PatientName    string `json:"patient_name,omitempty"`
	DoctorName     string `json:"doctor_name,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

// AppointmentFilter narrows appointment listings. Zero values mean "no
// filter".
type AppointmentFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
}

type MedicalRecord struct {
	ID               int64      `json:"record_id"`
	PatientID        int64      `json:"patient_id"`
	DoctorID         int64      `json:"doctor_id"`
	AppointmentID    *int64     `json:"appointment_id,omitempty"`
	Symptoms         *string    `json:"symptoms,omitempty"`
	Diagnosis        *string    `json:"diagnosis,omitempty"`
	PredictedDisease *string    `json:"predicted_disease,omitempty"`
	ConfidenceScore  *float64   `json:"confidence_score,omitempty"`
	Medicines        *string    `json:"medicines,omitempty"`
	TreatmentNotes   *string    `json:"treatment_notes,omitempty"`
	FollowUpDate     *time.Time `json:"follow_up_date,omitempty"`
	VisitDate        time.Time  `json:"visit_date"`
}

type DiseaseCount struct {
	Disease string `json:"disease"`
	Count   int    `json:"count"`
}

type DashboardStats struct {
	TotalPatients         int            `json:"total_patients"`
	TotalDoctors          int            `json:"total_doctors"`
	ScheduledAppointments int            `json:"scheduled_appointments"`
	TodaysVisits          int            `json:"todays_visits"`
	UpcomingAppointments  []Appointment  `json:"upcoming_appointments"`
	TopPredictedDiseases  []DiseaseCount `json:"top_predicted_diseases"`
}
