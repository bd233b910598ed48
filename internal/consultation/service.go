// Package consultation hosts chat conversations: it owns the session
// store, serializes access per conversation, and runs the form-based
// prediction path.
package consultation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"smart-hospital/internal/chatbot"
	"smart-hospital/internal/features"
	"smart-hospital/internal/lexicon"
	"smart-hospital/internal/logger"
	"smart-hospital/internal/oracle"
)

// Conversation is one live chat session. The mutex guarantees that a
// session is processed by exactly one caller at a time; the engine
// itself assumes unshared sessions.
type Conversation struct {
	ID        uuid.UUID
	Session   *chatbot.Session
	CreatedAt time.Time

	mu sync.Mutex
}

type Service struct {
	engine    *chatbot.Engine
	builder   *features.Builder
	predictor chatbot.Predictor
	recorder  chatbot.Recorder

	mu            sync.RWMutex
	conversations map[uuid.UUID]*Conversation
}

func NewService(engine *chatbot.Engine, builder *features.Builder, predictor chatbot.Predictor, recorder chatbot.Recorder) *Service {
	return &Service{
		engine:        engine,
		builder:       builder,
		predictor:     predictor,
		recorder:      recorder,
		conversations: make(map[uuid.UUID]*Conversation),
	}
}

// Create opens a new conversation and returns it with the opening
// message (greeting plus the patient-details request).
func (s *Service) Create() (*Conversation, string) {
	conv := &Conversation{
		ID:        uuid.New(),
		Session:   chatbot.NewSession(),
		CreatedAt: time.Now(),
	}
	opening := s.engine.Start(conv.Session)

	s.mu.Lock()
	s.conversations[conv.ID] = conv
	s.mu.Unlock()

	logger.Debug("conversation created", "id", conv.ID)
	return conv, opening
}

// Get returns the conversation for id.
func (s *Service) Get(id uuid.UUID) (*Conversation, error) {
	s.mu.RLock()
	conv, ok := s.conversations[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("conversation %s not found", id)
	}
	return conv, nil
}

// Chat feeds one utterance into the conversation's session and returns
// the reply and the resulting state.
func (s *Service) Chat(ctx context.Context, id uuid.UUID, message string) (string, chatbot.State, error) {
	conv, err := s.Get(id)
	if err != nil {
		return "", "", err
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()
	reply := s.engine.Respond(ctx, conv.Session, message)
	return reply, conv.Session.State, nil
}

// PredictRequest is the form-based prediction input: explicit symptom
// and history selections, optionally with measured vitals.
type PredictRequest struct {
	Name     string           `json:"name"`
	Age      int              `json:"age"`
	Gender   string           `json:"gender"`
	Symptoms []string         `json:"symptoms"`
	History  []string         `json:"history,omitempty"`
	Vitals   *features.Vitals `json:"vitals,omitempty"`
}

// PredictResult is the form path's output. Warning is set when the
// prediction succeeded but could not be saved.
type PredictResult struct {
	Predictions []oracle.Prediction `json:"predictions"`
	Warning     string              `json:"warning,omitempty"`
}

// Predict runs the advanced path: a complete feature vector straight
// from form input, with explicit vitals when supplied. Unknown
// identifiers are ignored.
func (s *Service) Predict(ctx context.Context, req PredictRequest) (*PredictResult, error) {
	answers := make(map[string]int)
	for _, id := range req.Symptoms {
		if lexicon.IsSymptom(id) {
			answers[id] = 1
		}
	}
	for _, id := range req.History {
		for _, known := range lexicon.History {
			if id == known {
				answers[id] = 1
			}
		}
	}

	vec := s.builder.Build(features.Demographics{Age: req.Age, Gender: req.Gender}, answers, req.Vitals)
	predictions, err := s.predictor.Predict(ctx, vec, 3)
	if err != nil {
		return nil, err
	}

	result := &PredictResult{Predictions: predictions}
	if len(predictions) == 0 || s.recorder == nil {
		return result, nil
	}

	var reported []string
	for _, id := range lexicon.Symptoms {
		if answers[id] == 1 {
			reported = append(reported, lexicon.DisplayName(id))
		}
	}
	patient := chatbot.Patient{Name: req.Name, Age: req.Age, Gender: req.Gender}
	if patient.Name == "" {
		patient.Name = "Patient"
	}
	if err := s.recorder.RecordPrediction(ctx, patient, predictions[0], reported); err != nil {
		logger.Warn("failed to record form prediction", "patient", patient.Name, "err", err)
		result.Warning = "prediction could not be saved to the patient record"
	}
	return result, nil
}
