// Package chatbot implements the conversational symptom-collection
// state machine. One Session per conversation; sessions are never
// shared across callers. Serializing access is the hosting layer's
// job (see consultation.Service).
package chatbot

import (
	"smart-hospital/internal/lexicon"
	"smart-hospital/internal/oracle"
)

// State names the dialogue phases. The values are stable and exposed on
// the chat API so clients can render progress.
type State string

const (
	StateGreeting       State = "greeting"
	StatePatientInfo    State = "patient_info"
	StatePrimarySymptom State = "primary_symptom"
	StateFollowUp       State = "follow_up_symptoms"
	StateMedicalHistory State = "medical_history"
	StateVitalsOffer    State = "vital_signs_optional"
	StateVitals         State = "vital_signs"
	StateCompleted      State = "completed"
)

// Patient holds the demographics collected in the patient_info state.
type Patient struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"` // Male, Female or Other
}

// Session is the mutable state of one conversation.
//
// Answers maps symptom/history identifiers to 0 or 1; an identifier
// that was never resolved is simply absent. Every identifier in Asked
// has an Answers entry, and Pending (the question currently awaiting a
// yes/no answer) is never in Asked.
type Session struct {
	State   State
	Patient Patient
	Answers map[string]int
	Pending string
	Asked   map[string]struct{}

	// LastResult keeps the most recent completed prediction so the
	// report endpoint can render it after the fact.
	LastResult []oracle.Prediction
}

// NewSession returns a fresh session in the greeting state.
func NewSession() *Session {
	return &Session{
		State:   StateGreeting,
		Answers: make(map[string]int),
		Asked:   make(map[string]struct{}),
	}
}

func (s *Session) reset() {
	*s = *NewSession()
}

// resolve records a final 0/1 answer for id and marks it asked.
func (s *Session) resolve(id string, value int) {
	s.Answers[id] = value
	s.Asked[id] = struct{}{}
}

// resolvedSymptoms counts distinct symptom identifiers already settled,
// which is what the 8-question cap is measured against.
func (s *Session) resolvedSymptoms() int {
	n := 0
	for id := range s.Asked {
		if lexicon.IsSymptom(id) {
			n++
		}
	}
	return n
}

// nextUnaskedSymptom returns the first canonical symptom not yet
// resolved, or "" when the list is exhausted.
func (s *Session) nextUnaskedSymptom() string {
	for _, id := range lexicon.Symptoms {
		if _, done := s.Asked[id]; !done {
			return id
		}
	}
	return ""
}

// PositiveSymptoms returns display names of symptoms answered yes, in
// canonical order.
func (s *Session) PositiveSymptoms() []string {
	var names []string
	for _, id := range lexicon.Symptoms {
		if s.Answers[id] == 1 {
			names = append(names, lexicon.DisplayName(id))
		}
	}
	return names
}
