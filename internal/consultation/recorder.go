package consultation

import (
	"context"
	"strings"

	"smart-hospital/internal/chatbot"
	"smart-hospital/internal/hospital"
	"smart-hospital/internal/oracle"
)

// PredictionRecorder persists completed predictions through the
// hospital repository. It looks up an existing patient by
// case-insensitive exact name before creating one; patients sharing a
// name collide silently onto the same record. Known limitation.
type PredictionRecorder struct {
	repo hospital.Repository
}

func NewPredictionRecorder(repo hospital.Repository) *PredictionRecorder {
	return &PredictionRecorder{repo: repo}
}

func (r *PredictionRecorder) RecordPrediction(ctx context.Context, patient chatbot.Patient, top oracle.Prediction, symptoms []string) error {
	existing, err := r.repo.FindPatientByName(ctx, patient.Name)
	if err != nil {
		return err
	}

	var patientID int64
	if existing != nil {
		patientID = existing.ID
	} else {
		patientID, err = r.repo.AddPatient(ctx, patient.Name, patient.Age, patient.Gender, nil, nil)
		if err != nil {
			return err
		}
	}

	_, err = r.repo.SavePrediction(ctx, patientID, top.Disease, top.Probability, strings.Join(symptoms, ", "))
	return err
}
