package hospital

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// aiDoctorID is the seeded "AI Assistant" doctor that owns records
// created by the chatbot rather than by a human doctor.
const aiDoctorID = 1

type Repository interface {
	AddPatient(ctx context.Context, name string, age int, gender string, contact, address *string) (int64, error)
	GetPatients(ctx context.Context, limit int) ([]Patient, error)
	GetPatientByID(ctx context.Context, id int64) (*Patient, error)
	// FindPatientByName matches case-insensitively on the exact name and
	// returns (nil, nil) when no patient matches. Duplicate names resolve
	// to the earliest record.
	FindPatientByName(ctx context.Context, name string) (*Patient, error)
	UpdatePatient(ctx context.Context, id int64, upd PatientUpdate) error

	AddDoctor(ctx context.Context, name, specialization string, contact, email *string) (int64, error)
	GetDoctors(ctx context.Context, specialization string) ([]Doctor, error)

	ScheduleAppointment(ctx context.Context, patientID, doctorID int64, at time.Time, notes *string) (int64, error)
	GetAppointments(ctx context.Context, filter AppointmentFilter) ([]Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, status string) error

	SavePrediction(ctx context.Context, patientID int64, disease string, confidence float64, symptoms string) (int64, error)
	GetPatientHistory(ctx context.Context, patientID int64) ([]MedicalRecord, error)

	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type sqlRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &sqlRepo{db: db}
}

func (r *sqlRepo) AddPatient(ctx context.Context, name string, age int, gender string, contact, address *string) (int64, error) {
	query := `INSERT INTO patients (name, age, gender, contact, address)
		VALUES ($1, $2, $3, $4, $5) RETURNING patient_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, name, age, gender, contact, address).Scan(&id); err != nil {
		return 0, fmt.Errorf("adding patient: %w", err)
	}
	return id, nil
}

func (r *sqlRepo) GetPatients(ctx context.Context, limit int) ([]Patient, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT patient_id, name, age, gender, contact, address, created_at
		FROM patients ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.Contact, &p.Address, &p.CreatedAt); err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *sqlRepo) GetPatientByID(ctx context.Context, id int64) (*Patient, error) {
	query := `SELECT patient_id, name, age, gender, contact, address, created_at
		FROM patients WHERE patient_id = $1`
	var p Patient
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.Contact, &p.Address, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("patient %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqlRepo) FindPatientByName(ctx context.Context, name string) (*Patient, error) {
	query := `SELECT patient_id, name, age, gender, contact, address, created_at
		FROM patients WHERE LOWER(name) = LOWER($1) ORDER BY patient_id LIMIT 1`
	var p Patient
	err := r.db.QueryRowContext(ctx, query, name).Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.Contact, &p.Address, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqlRepo) UpdatePatient(ctx context.Context, id int64, upd PatientUpdate) error {
	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Age != nil {
		add("age", *upd.Age)
	}
	if upd.Gender != nil {
		add("gender", *upd.Gender)
	}
	if upd.Contact != nil {
		add("contact", *upd.Contact)
	}
	if upd.Address != nil {
		add("address", *upd.Address)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE patients SET %s WHERE patient_id = $%d", strings.Join(sets, ", "), len(args))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating patient %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("patient %d not found", id)
	}
	return nil
}

func (r *sqlRepo) AddDoctor(ctx context.Context, name, specialization string, contact, email *string) (int64, error) {
	query := `INSERT INTO doctors (name, specialization, contact, email)
		VALUES ($1, $2, $3, $4) RETURNING doctor_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, name, specialization, contact, email).Scan(&id); err != nil {
		return 0, fmt.Errorf("adding doctor: %w", err)
	}
	return id, nil
}

func (r *sqlRepo) GetDoctors(ctx context.Context, specialization string) ([]Doctor, error) {
	query := `SELECT doctor_id, name, specialization, contact, email, created_at FROM doctors`
	var args []interface{}
	if specialization != "" {
		query += ` WHERE specialization = $1`
		args = append(args, specialization)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialization, &d.Contact, &d.Email, &d.CreatedAt); err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

func (r *sqlRepo) ScheduleAppointment(ctx context.Context, patientID, doctorID int64, at time.Time, notes *string) (int64, error) {
	query := `INSERT INTO appointments (patient_id, doctor_id, appointment_date, notes)
		VALUES ($1, $2, $3, $4) RETURNING appointment_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, patientID, doctorID, at, notes).Scan(&id); err != nil {
		return 0, fmt.Errorf("scheduling appointment: %w", err)
	}
	return id, nil
}

func (r *sqlRepo) GetAppointments(ctx context.Context, filter AppointmentFilter) ([]Appointment, error) {
	query := `SELECT a.appointment_id, a.patient_id, a.doctor_id, a.appointment_date, a.status, a.notes, a.created_at,
			p.name, d.name, d.specialization
		FROM appointments a
		JOIN patients p ON a.patient_id = p.patient_id
		JOIN doctors d ON a.doctor_id = d.doctor_id`

	var conditions []string
	var args []interface{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("a.appointment_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("a.appointment_date <= $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.appointment_date"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Status, &a.Notes, &a.CreatedAt,
			&a.PatientName, &a.DoctorName, &a.Specialization); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (r *sqlRepo) UpdateAppointmentStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE appointments SET status = $1 WHERE appointment_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("updating appointment %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("appointment %d not found", id)
	}
	return nil
}

// SavePrediction stores a chatbot prediction as a medical record owned
// by the AI Assistant doctor.
func (r *sqlRepo) SavePrediction(ctx context.Context, patientID int64, disease string, confidence float64, symptoms string) (int64, error) {
	query := `INSERT INTO medical_records (patient_id, doctor_id, symptoms, predicted_disease, confidence_score)
		VALUES ($1, $2, $3, $4, $5) RETURNING record_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, patientID, aiDoctorID, symptoms, disease, confidence).Scan(&id); err != nil {
		return 0, fmt.Errorf("saving prediction: %w", err)
	}
	return id, nil
}

func (r *sqlRepo) GetPatientHistory(ctx context.Context, patientID int64) ([]MedicalRecord, error) {
	query := `SELECT record_id, patient_id, doctor_id, appointment_id, symptoms, diagnosis,
			predicted_disease, confidence_score, medicines, treatment_notes, follow_up_date, visit_date
		FROM medical_records WHERE patient_id = $1 ORDER BY visit_date DESC`
	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []MedicalRecord
	for rows.Next() {
		var m MedicalRecord
		if err := rows.Scan(&m.ID, &m.PatientID, &m.DoctorID, &m.AppointmentID, &m.Symptoms, &m.Diagnosis,
			&m.PredictedDisease, &m.ConfidenceScore, &m.Medicines, &m.TreatmentNotes, &m.FollowUpDate, &m.VisitDate); err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

func (r *sqlRepo) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM patients`, &stats.TotalPatients},
		{`SELECT COUNT(*) FROM doctors`, &stats.TotalDoctors},
		{`SELECT COUNT(*) FROM appointments WHERE status = 'Scheduled'`, &stats.ScheduledAppointments},
	}
	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	// Date boundaries are computed here rather than in SQL to keep the
	// queries portable across both backends.
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM medical_records WHERE visit_date >= $1`, todayStart).Scan(&stats.TodaysVisits); err != nil {
		return nil, err
	}

	upcoming := AppointmentFilter{From: &now}
	appointments, err := r.GetAppointments(ctx, upcoming)
	if err != nil {
		return nil, err
	}
	if len(appointments) > 5 {
		appointments = appointments[:5]
	}
	stats.UpcomingAppointments = appointments

	rows, err := r.db.QueryContext(ctx, `SELECT predicted_disease, COUNT(*) AS cnt
		FROM medical_records WHERE predicted_disease IS NOT NULL
		GROUP BY predicted_disease ORDER BY cnt DESC LIMIT 5`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var dc DiseaseCount
		if err := rows.Scan(&dc.Disease, &dc.Count); err != nil {
			return nil, err
		}
		stats.TopPredictedDiseases = append(stats.TopPredictedDiseases, dc)
	}
	return stats, rows.Err()
}
