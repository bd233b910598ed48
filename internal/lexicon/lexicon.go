// Package lexicon holds the static symptom vocabulary: canonical
// identifiers, their free-text trigger phrases, and the keyword-based
// yes/no classifier used by the chat engine. Everything here is
// immutable after process start and safe for concurrent reads.
package lexicon

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Symptoms is the canonical, ordered list of symptom identifiers the
// model was trained on. Question order in the chat follows this list.
var Symptoms = []string{
	"fever", "cough", "sore_throat", "fatigue", "headache",
	"nausea", "vomiting", "diarrhea", "shortness_of_breath",
	"chest_pain", "runny_nose", "body_ache", "loss_of_smell",
}

// History is the fixed medical-history question sequence.
var History = []string{
	"comorbid_diabetes", "comorbid_hypertension", "smoker",
}

// triggers maps each canonical identifier to the phrases that mark it as
// mentioned. Matching is plain substring search with no negation
// handling: "no headache" still counts as headache.
var triggers = map[string][]string{
	"fever":               {"fever", "temperature", "hot", "burning up"},
	"cough":               {"cough", "coughing"},
	"sore_throat":         {"sore throat", "throat pain", "throat hurt", "throat is sore", "throat sore"},
	"fatigue":             {"tired", "fatigue", "exhausted", "weak", "weakness"},
	"headache":            {"headache", "head pain", "head hurt"},
	"nausea":              {"nausea", "nauseous", "queasy", "sick to stomach"},
	"vomiting":            {"vomit", "vomiting", "throw up", "throwing up"},
	"diarrhea":            {"diarrhea", "loose stool", "watery stool"},
	"shortness_of_breath": {"short of breath", "breathing difficult", "can't breathe", "breathless", "breath"},
	"chest_pain":          {"chest pain", "chest hurt", "chest ache"},
	"runny_nose":          {"runny nose", "nose running", "nasal discharge"},
	"body_ache":           {"body ache", "body pain", "muscle pain", "aching"},
	"loss_of_smell":       {"loss of smell", "can't smell", "no smell"},
}

// Identify returns the canonical identifiers of every symptom mentioned
// in text, in canonical order. A symptom matches as soon as any one of
// its trigger phrases occurs in the lower-cased text.
func Identify(text string) []string {
	text = strings.ToLower(text)
	var found []string
	for _, symptom := range Symptoms {
		for _, phrase := range triggers[symptom] {
			if strings.Contains(text, phrase) {
				found = append(found, symptom)
				break
			}
		}
	}
	return found
}

// IsSymptom reports whether id is one of the canonical symptom identifiers.
func IsSymptom(id string) bool {
	for _, s := range Symptoms {
		if s == id {
			return true
		}
	}
	return false
}

// DisplayName converts a canonical identifier to its patient-facing
// form, e.g. "shortness_of_breath" -> "Shortness Of Breath".
func DisplayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}
