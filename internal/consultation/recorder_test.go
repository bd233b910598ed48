package consultation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-hospital/internal/chatbot"
	"smart-hospital/internal/hospital"
	"smart-hospital/internal/oracle"
)

// fakeRepo implements the three repository methods the recorder touches;
// the embedded nil interface panics if anything else is called.
type fakeRepo struct {
	hospital.Repository

	existing *hospital.Patient

	addedName     string
	addedAge      int
	addedGender   string
	addCalls      int
	savedPatient  int64
	savedDisease  string
	savedScore    float64
	savedSymptoms string
}

func (f *fakeRepo) FindPatientByName(_ context.Context, name string) (*hospital.Patient, error) {
	if f.existing != nil && strings.EqualFold(f.existing.Name, name) {
		return f.existing, nil
	}
	return nil, nil
}

func (f *fakeRepo) AddPatient(_ context.Context, name string, age int, gender string, contact, address *string) (int64, error) {
	f.addCalls++
	f.addedName = name
	f.addedAge = age
	f.addedGender = gender
	return 42, nil
}

func (f *fakeRepo) SavePrediction(_ context.Context, patientID int64, disease string, confidence float64, symptoms string) (int64, error) {
	f.savedPatient = patientID
	f.savedDisease = disease
	f.savedScore = confidence
	f.savedSymptoms = symptoms
	return 1, nil
}

func TestRecordPredictionNewPatient(t *testing.T) {
	repo := &fakeRepo{}
	rec := NewPredictionRecorder(repo)

	err := rec.RecordPrediction(context.Background(),
		chatbot.Patient{Name: "John Smith", Age: 45, Gender: "Male"},
		oracle.Prediction{Disease: "Influenza", Probability: 0.62},
		[]string{"Fever", "Headache"})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.addCalls)
	assert.Equal(t, "John Smith", repo.addedName)
	assert.Equal(t, 45, repo.addedAge)
	assert.Equal(t, "Male", repo.addedGender)
	assert.Equal(t, int64(42), repo.savedPatient)
	assert.Equal(t, "Influenza", repo.savedDisease)
	assert.Equal(t, 0.62, repo.savedScore)
	assert.Equal(t, "Fever, Headache", repo.savedSymptoms)
}

func TestRecordPredictionReusesExistingPatient(t *testing.T) {
	repo := &fakeRepo{existing: &hospital.Patient{ID: 7, Name: "John Smith"}}
	rec := NewPredictionRecorder(repo)

	err := rec.RecordPrediction(context.Background(),
		chatbot.Patient{Name: "john smith", Age: 45, Gender: "Male"},
		oracle.Prediction{Disease: "Influenza", Probability: 0.62},
		[]string{"Fever"})
	require.NoError(t, err)

	assert.Equal(t, 0, repo.addCalls, "name matches case-insensitively")
	assert.Equal(t, int64(7), repo.savedPatient)
}
