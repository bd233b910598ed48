package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = []string{
	"age", "sex_encoded",
	"fever", "cough", "sore_throat", "fatigue", "headache",
	"nausea", "vomiting", "diarrhea", "shortness_of_breath",
	"chest_pain", "runny_nose", "body_ache", "loss_of_smell",
	"comorbid_diabetes", "comorbid_hypertension", "smoker",
	"temperature_c", "oxygen_saturation", "heart_rate",
	"respiratory_rate", "bp_systolic", "bp_diastolic",
	"age_group_encoded", "high_fever", "low_oxygen",
	"tachycardia", "hypertension_acute",
	"symptom_count", "respiratory_symptom_count", "gi_symptom_count",
}

func TestBuildDefaults(t *testing.T) {
	b := NewBuilder(testSchema)

	vec := b.Build(Demographics{Age: 35, Gender: "Male"}, nil, nil)

	require.Len(t, vec, len(testSchema))
	assert.Equal(t, 35.0, vec["age"])
	assert.Equal(t, 1.0, vec["sex_encoded"])
	assert.Equal(t, 1.0, vec["age_group_encoded"])
	assert.Equal(t, 36.5, vec["temperature_c"])
	assert.Equal(t, 95.0, vec["oxygen_saturation"])
	assert.Equal(t, 80.0, vec["heart_rate"])
	assert.Equal(t, 16.0, vec["respiratory_rate"])
	assert.Equal(t, 120.0, vec["bp_systolic"])
	assert.Equal(t, 80.0, vec["bp_diastolic"])
	assert.Equal(t, 0.0, vec["symptom_count"])
	assert.Equal(t, 0.0, vec["high_fever"])
	assert.Equal(t, 0.0, vec["low_oxygen"])
}

func TestBuildUnknownDemographics(t *testing.T) {
	b := NewBuilder(testSchema)

	vec := b.Build(Demographics{}, nil, nil)

	assert.Equal(t, 30.0, vec["age"], "missing age falls back to 30")
	assert.Equal(t, 0.0, vec["sex_encoded"], "anything but Male encodes as 0")
}

func TestBuildFeverRaisesDefaultTemperature(t *testing.T) {
	b := NewBuilder(testSchema)

	vec := b.Build(Demographics{Age: 40, Gender: "Female"}, map[string]int{"fever": 1}, nil)

	assert.Equal(t, 37.5, vec["temperature_c"])
	assert.Equal(t, 1.0, vec["high_fever"], "reported fever counts as high fever without measurements")
	assert.Equal(t, 1.0, vec["symptom_count"])
}

func TestBuildDerivedCounts(t *testing.T) {
	b := NewBuilder(testSchema)

	answers := map[string]int{
		"cough":               1,
		"sore_throat":         1,
		"shortness_of_breath": 1,
		"nausea":              1,
		"diarrhea":            1,
		"headache":            1,
		"fever":               0,
		"vomiting":            0,
	}
	vec := b.Build(Demographics{Age: 25, Gender: "Male"}, answers, nil)

	assert.Equal(t, 6.0, vec["symptom_count"], "only positive answers count")
	assert.Equal(t, 3.0, vec["respiratory_symptom_count"])
	assert.Equal(t, 2.0, vec["gi_symptom_count"])
}

func TestBuildExplicitVitals(t *testing.T) {
	b := NewBuilder(testSchema)

	vitals := &Vitals{
		TemperatureC:     39.2,
		OxygenSaturation: 91,
		HeartRate:        112,
		RespiratoryRate:  22,
		BPSystolic:       150,
		BPDiastolic:      85,
	}
	vec := b.Build(Demographics{Age: 70, Gender: "Male"}, nil, vitals)

	assert.Equal(t, 39.2, vec["temperature_c"])
	assert.Equal(t, 91.0, vec["oxygen_saturation"])
	assert.Equal(t, 1.0, vec["high_fever"])
	assert.Equal(t, 1.0, vec["low_oxygen"])
	assert.Equal(t, 1.0, vec["tachycardia"])
	assert.Equal(t, 1.0, vec["hypertension_acute"], "systolic over 140 is enough")
	assert.Equal(t, 2.0, vec["age_group_encoded"])
}

func TestBuildNormalVitalsClearDerivedFlags(t *testing.T) {
	b := NewBuilder(testSchema)

	vitals := &Vitals{
		TemperatureC:     36.8,
		OxygenSaturation: 98,
		HeartRate:        72,
		RespiratoryRate:  14,
		BPSystolic:       118,
		BPDiastolic:      76,
	}
	vec := b.Build(Demographics{Age: 30, Gender: "Female"}, nil, vitals)

	assert.Equal(t, 0.0, vec["high_fever"])
	assert.Equal(t, 0.0, vec["low_oxygen"])
	assert.Equal(t, 0.0, vec["tachycardia"])
	assert.Equal(t, 0.0, vec["hypertension_acute"])
}

func TestBuildAgeGroups(t *testing.T) {
	b := NewBuilder(testSchema)

	tests := []struct {
		age  int
		want float64
	}{
		{5, 0},
		{17, 0},
		{18, 1},
		{64, 1},
		{65, 2},
		{90, 2},
	}
	for _, tt := range tests {
		vec := b.Build(Demographics{Age: tt.age, Gender: "Other"}, nil, nil)
		assert.Equal(t, tt.want, vec["age_group_encoded"], "age %d", tt.age)
	}
}

func TestBuildBackfillsUnknownSchemaNames(t *testing.T) {
	schema := append([]string{"some_future_feature"}, testSchema...)
	b := NewBuilder(schema)

	vec := b.Build(Demographics{Age: 30, Gender: "Male"}, nil, nil)

	v, ok := vec["some_future_feature"]
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
}
