// Package features turns collected patient answers into the complete,
// fixed-schema numeric feature map consumed by the prediction model.
package features

import (
	"smart-hospital/internal/lexicon"
)

// Vector is a complete feature map keyed by the model's feature names.
// Every name in the model schema is present; booleans are 0/1.
type Vector map[string]float64

// Demographics carries the patient fields the model cares about.
// Age <= 0 means unknown and falls back to the neutral default of 30.
type Demographics struct {
	Age    int
	Gender string // "Male", "Female" or "Other"
}

// Vitals are explicitly measured vital signs. They are only supplied on
// the advanced path (the form endpoint); the chat flow always predicts
// from defaults.
type Vitals struct {
	TemperatureC     float64 `json:"temperature_c"`
	OxygenSaturation float64 `json:"oxygen_saturation"`
	HeartRate        float64 `json:"heart_rate"`
	RespiratoryRate  float64 `json:"respiratory_rate"`
	BPSystolic       float64 `json:"bp_systolic"`
	BPDiastolic      float64 `json:"bp_diastolic"`
}

// Builder assembles feature vectors against the model's declared schema.
// Construct it from oracle.Artifacts so the output always covers exactly
// the names the model expects.
type Builder struct {
	schema []string
}

func NewBuilder(schema []string) *Builder {
	return &Builder{schema: schema}
}

// Build produces the full feature vector for one prediction request.
//
// answers maps symptom/history identifiers to 0/1; identifiers that were
// never asked are absent and deliberately resolve to 0: silence counts
// as a negative finding, not as unknown. vitals may be nil, in which
// case fixed neutral physiological values are used (temperature rises to
// 37.5 when fever was reported).
func (b *Builder) Build(d Demographics, answers map[string]int, vitals *Vitals) Vector {
	vec := make(Vector, len(b.schema))

	age := d.Age
	if age <= 0 {
		age = 30
	}
	vec["age"] = float64(age)
	if d.Gender == "Male" {
		vec["sex_encoded"] = 1
	} else {
		vec["sex_encoded"] = 0
	}

	for _, id := range lexicon.Symptoms {
		vec[id] = float64(answers[id])
	}
	for _, id := range lexicon.History {
		vec[id] = float64(answers[id])
	}

	fever := vec["fever"] == 1
	if vitals != nil {
		vec["temperature_c"] = vitals.TemperatureC
		vec["oxygen_saturation"] = vitals.OxygenSaturation
		vec["heart_rate"] = vitals.HeartRate
		vec["respiratory_rate"] = vitals.RespiratoryRate
		vec["bp_systolic"] = vitals.BPSystolic
		vec["bp_diastolic"] = vitals.BPDiastolic
	} else {
		temp := 36.5
		if fever {
			temp = 37.5
		}
		vec["temperature_c"] = temp
		vec["oxygen_saturation"] = 95
		vec["heart_rate"] = 80
		vec["respiratory_rate"] = 16
		vec["bp_systolic"] = 120
		vec["bp_diastolic"] = 80
	}

	switch {
	case age < 18:
		vec["age_group_encoded"] = 0
	case age < 65:
		vec["age_group_encoded"] = 1
	default:
		vec["age_group_encoded"] = 2
	}

	vec["high_fever"] = boolFeature(fever || (vitals != nil && vitals.TemperatureC > 38.5))
	vec["low_oxygen"] = boolFeature(vitals != nil && vitals.OxygenSaturation < 95)
	vec["tachycardia"] = boolFeature(vitals != nil && vitals.HeartRate > 100)
	vec["hypertension_acute"] = boolFeature(vitals != nil && (vitals.BPSystolic > 140 || vitals.BPDiastolic > 90))

	var total float64
	for _, id := range lexicon.Symptoms {
		total += vec[id]
	}
	vec["symptom_count"] = total
	vec["respiratory_symptom_count"] = vec["cough"] + vec["sore_throat"] + vec["shortness_of_breath"]
	vec["gi_symptom_count"] = vec["nausea"] + vec["vomiting"] + vec["diarrhea"]

	// Any schema name this builder does not know about defaults to 0 so
	// the vector always satisfies the model contract.
	for _, name := range b.schema {
		if _, ok := vec[name]; !ok {
			vec[name] = 0
		}
	}
	return vec
}

func boolFeature(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
