package chatbot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"smart-hospital/internal/features"
	"smart-hospital/internal/lexicon"
	"smart-hospital/internal/logger"
	"smart-hospital/internal/oracle"
)

// Mode selects question depth: the full flow walks follow-up symptoms,
// medical history and an optional vitals step; the quick flow collects
// free-text symptoms and predicts on demand.
type Mode int

const (
	ModeFull Mode = iota
	ModeQuick
)

// SymptomExtractor finds canonical symptom identifiers in free text.
type SymptomExtractor interface {
	Extract(text string) []string
}

// YesNoClassifier decides whether an utterance answers yes or no.
type YesNoClassifier interface {
	Classify(text string) lexicon.Verdict
}

// Predictor is the classifier boundary the engine calls once per
// completed information-gathering pass.
type Predictor interface {
	Predict(ctx context.Context, vec features.Vector, topK int) ([]oracle.Prediction, error)
}

// Recorder persists a completed prediction. It may be nil, in which
// case predictions are shown but never stored.
type Recorder interface {
	RecordPrediction(ctx context.Context, patient Patient, top oracle.Prediction, symptoms []string) error
}

type keywordExtractor struct{}

func (keywordExtractor) Extract(text string) []string { return lexicon.Identify(text) }

// Engine drives sessions through the dialogue protocol. It holds no
// per-conversation state itself and is safe to share across sessions.
type Engine struct {
	mode      Mode
	builder   *features.Builder
	predictor Predictor
	recorder  Recorder

	extract SymptomExtractor
	answer  YesNoClassifier // symptom/history questions
	confirm YesNoClassifier // offer prompts
}

// Option customizes an Engine.
type Option func(*Engine)

// WithExtractor swaps the symptom-extraction strategy.
func WithExtractor(x SymptomExtractor) Option {
	return func(e *Engine) { e.extract = x }
}

// WithClassifiers swaps the yes/no strategies: answer handles symptom
// and history questions, confirm handles offer prompts.
func WithClassifiers(answer, confirm YesNoClassifier) Option {
	return func(e *Engine) {
		e.answer = answer
		e.confirm = confirm
	}
}

func NewEngine(mode Mode, builder *features.Builder, predictor Predictor, recorder Recorder, opts ...Option) *Engine {
	e := &Engine{
		mode:      mode,
		builder:   builder,
		predictor: predictor,
		recorder:  recorder,
		extract:   keywordExtractor{},
		answer:    lexicon.NewAnswerClassifier(),
		confirm:   lexicon.NewConfirmClassifier(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start opens the conversation: greet and ask for patient details. The
// session moves to patient_info.
func (e *Engine) Start(s *Session) string {
	s.State = StatePatientInfo
	if e.mode == ModeQuick {
		return msgQuickIntro
	}
	return randomGreeting() + msgAskPatientInfo
}

// Respond processes one utterance and returns the reply. Reserved
// commands are intercepted before state dispatch: quit and friends end
// the turn without mutating the session, restart and friends rebuild it
// from scratch.
func (e *Engine) Respond(ctx context.Context, s *Session, message string) string {
	message = strings.TrimSpace(message)
	lower := strings.ToLower(message)

	switch lower {
	case "quit", "exit", "stop", "cancel":
		return msgFarewell
	case "restart", "reset", "start over":
		s.reset()
		return e.Start(s)
	}

	switch s.State {
	case StateGreeting:
		return e.Start(s)
	case StatePatientInfo:
		return e.handlePatientInfo(s, message)
	case StatePrimarySymptom:
		if e.mode == ModeQuick {
			return e.handleQuickSymptoms(ctx, s, lower)
		}
		return e.handlePrimarySymptom(s, lower)
	case StateFollowUp:
		return e.handleFollowUp(s, lower)
	case StateMedicalHistory:
		return e.handleMedicalHistory(s, lower)
	case StateVitalsOffer:
		if e.confirm.Classify(lower) == lexicon.Yes {
			s.State = StateVitals
			return msgVitalsPrompt
		}
		return e.generatePrediction(ctx, s)
	case StateVitals:
		// Numeric vitals parsing is not part of the chat flow; whatever
		// the user typed, the gathered answers are enough to predict.
		return e.generatePrediction(ctx, s)
	case StateCompleted:
		if e.mode == ModeQuick {
			return msgQuickCompleted
		}
		if e.confirm.Classify(lower) == lexicon.Yes {
			return msgScheduleGuidance
		}
		return msgCompletedFarewell
	default:
		return msgLost
	}
}

func (e *Engine) handlePatientInfo(s *Session, message string) string {
	patient, ok := parsePatientInfo(message)
	if !ok {
		if e.mode == ModeQuick {
			return msgQuickInfoRetry
		}
		return msgPatientInfoRetry
	}
	s.Patient = patient
	s.State = StatePrimarySymptom
	if e.mode == ModeQuick {
		return fmt.Sprintf("Thanks %s!\n\nDescribe your symptoms:\nExample: 'fever, headache, cough'", patient.Name)
	}
	return fmt.Sprintf("Thank you, %s! Nice to meet you.\n\n%s", patient.Name, msgAskPrimarySymptom)
}

// parsePatientInfo accepts "name, age, gender" or "age, gender".
// Unknown genders coerce to Other; a non-integer age fails the parse.
func parsePatientInfo(message string) (Patient, bool) {
	parts := strings.Split(message, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch {
	case len(parts) >= 3:
		age, err := strconv.Atoi(parts[1])
		if err != nil {
			return Patient{}, false
		}
		return Patient{
			Name:   cases.Title(language.English).String(parts[0]),
			Age:    age,
			Gender: normalizeGender(parts[2]),
		}, true
	case len(parts) == 2:
		age, err := strconv.Atoi(parts[0])
		if err != nil {
			return Patient{}, false
		}
		return Patient{
			Name:   "Patient",
			Age:    age,
			Gender: normalizeGender(parts[1]),
		}, true
	}
	return Patient{}, false
}

func normalizeGender(raw string) string {
	g := capitalize(raw)
	switch g {
	case "Male", "Female", "Other":
		return g
	}
	return "Other"
}

// capitalize mirrors upper-casing the first letter and lower-casing the
// rest, so "MALE" and "male" both become "Male".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func (e *Engine) handlePrimarySymptom(s *Session, text string) string {
	identified := e.extract.Extract(text)
	if len(identified) == 0 {
		return msgPrimarySymptomRetry
	}

	names := make([]string, 0, len(identified))
	for _, id := range identified {
		s.resolve(id, 1)
		names = append(names, lexicon.DisplayName(id))
	}
	s.State = StateFollowUp
	return fmt.Sprintf("I understand you're experiencing: %s.\n\n%s", strings.Join(names, ", "), msgFirstFollowUp)
}

// handleFollowUp resolves the pending question (an answer that is
// neither a clear yes nor a clear no counts as no), picks up any extra
// symptoms volunteered in the same breath, then either asks the next
// unasked symptom or, once 8 distinct symptoms are settled or the list
// runs out, moves on to medical history.
func (e *Engine) handleFollowUp(s *Session, text string) string {
	if s.Pending != "" {
		value := 0
		if e.answer.Classify(text) == lexicon.Yes {
			value = 1
		}
		s.resolve(s.Pending, value)
		s.Pending = ""
	}

	for _, id := range e.extract.Extract(text) {
		if _, done := s.Asked[id]; !done {
			s.resolve(id, 1)
		}
	}

	next := s.nextUnaskedSymptom()
	if next != "" && s.resolvedSymptoms() < 8 {
		s.Pending = next
		return fmt.Sprintf("Do you have %s? (Yes/No)", lexicon.DisplayName(next))
	}

	s.State = StateMedicalHistory
	s.Pending = "comorbid_diabetes"
	return msgHistoryIntro
}

func (e *Engine) handleMedicalHistory(s *Session, text string) string {
	answered := s.Pending
	if answered != "" {
		value := 0
		if e.answer.Classify(text) == lexicon.Yes {
			value = 1
		}
		s.resolve(answered, value)
	}

	switch answered {
	case "comorbid_diabetes":
		s.Pending = "comorbid_hypertension"
		return msgAskHypertension
	case "comorbid_hypertension":
		s.Pending = "smoker"
		return msgAskSmoker
	default:
		s.Pending = ""
		s.State = StateVitalsOffer
		return msgVitalsOffer
	}
}

func (e *Engine) handleQuickSymptoms(ctx context.Context, s *Session, text string) string {
	found := e.extract.Extract(text)
	if len(found) > 0 {
		names := make([]string, 0, len(found))
		for _, id := range found {
			s.resolve(id, 1)
			names = append(names, lexicon.DisplayName(id))
		}
		return fmt.Sprintf("Found: %s\n\nMore symptoms? Or type 'predict' for diagnosis.", strings.Join(names, ", "))
	}
	if strings.Contains(text, "predict") {
		if len(s.Answers) == 0 {
			return msgQuickNoSymptoms
		}
		return e.generatePrediction(ctx, s)
	}
	return msgQuickSymptomHint
}

// generatePrediction is the shared terminal action: build features,
// call the classifier, render the ranked result and record it. The
// session only advances to completed on success; an empty result or a
// failure leaves the state untouched so the turn can be retried.
func (e *Engine) generatePrediction(ctx context.Context, s *Session) string {
	vec := e.builder.Build(features.Demographics{
		Age:    s.Patient.Age,
		Gender: s.Patient.Gender,
	}, s.Answers, nil)

	predictions, err := e.predictor.Predict(ctx, vec, 3)
	if err != nil {
		logger.Error("prediction failed", "err", err)
		return msgPredictionError
	}
	if len(predictions) == 0 {
		return msgPredictionEmpty
	}

	s.State = StateCompleted
	s.LastResult = predictions

	var reply string
	if e.mode == ModeQuick {
		reply = e.renderQuickResult(s, predictions)
	} else {
		reply = e.renderResult(s, predictions)
	}

	if e.recorder != nil {
		if err := e.recorder.RecordPrediction(ctx, s.Patient, predictions[0], s.PositiveSymptoms()); err != nil {
			logger.Warn("failed to record prediction", "patient", s.Patient.Name, "err", err)
			reply += "\n\n" + msgRecordWarning
		}
	}
	return reply
}

func (e *Engine) renderResult(s *Session, predictions []oracle.Prediction) string {
	var b strings.Builder
	b.WriteString("\n\n🔮 **AI Prediction Results**\n\n")
	b.WriteString("Based on your symptoms, here are my top predictions:\n\n")
	for i, p := range predictions {
		fmt.Fprintf(&b, "%d. **%s** - %.1f%% confidence\n", i+1, p.Disease, p.Probability*100)
	}

	if reported := s.PositiveSymptoms(); len(reported) > 0 {
		b.WriteString("\n\n📊 **Summary of Your Symptoms:**\n")
		b.WriteString("- " + strings.Join(reported, "\n- "))
	}

	b.WriteString(msgNextSteps)
	b.WriteString(msgDisclaimer)
	b.WriteString("\n\nWould you like to schedule an appointment with a doctor? (Yes/No)")
	return b.String()
}

func (e *Engine) renderQuickResult(s *Session, predictions []oracle.Prediction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n🔮 **Results for %s**\n\n", s.Patient.Name)
	for i, p := range predictions {
		fmt.Fprintf(&b, "%d. **%s** - %.1f%%\n", i+1, p.Disease, p.Probability*100)
	}
	if reported := s.PositiveSymptoms(); len(reported) > 0 {
		fmt.Fprintf(&b, "\n**Symptoms:** %s\n", strings.Join(reported, ", "))
	}
	b.WriteString(msgQuickFooter)
	return b.String()
}
