package lexicon

import "strings"

// Verdict is the outcome of classifying an utterance as a yes/no answer.
type Verdict int

const (
	Unknown Verdict = iota
	Yes
	No
)

// KeywordClassifier decides yes/no by substring search over fixed word
// sets. Yes wins when both sets match; neither set matching yields
// Unknown, which callers treat as an implicit "no".
type KeywordClassifier struct {
	yesWords []string
	noWords  []string
}

// NewAnswerClassifier returns the classifier used for symptom and
// medical-history questions. The yes set deliberately includes "have"
// and "experiencing" so that answers like "I have that sometimes" count
// as affirmative.
func NewAnswerClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		yesWords: []string{"yes", "yeah", "yep", "yup", "y", "have", "experiencing"},
		noWords:  []string{"no", "nope", "n", "don't", "dont"},
	}
}

// NewConfirmClassifier returns the classifier used for offer prompts
// (vital signs, appointment scheduling), where anything that is not an
// explicit yes counts as declining.
func NewConfirmClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		yesWords: []string{"yes", "yeah", "yep", "yup", "y"},
	}
}

// Classify lower-cases text and searches the yes set, then the no set.
func (c *KeywordClassifier) Classify(text string) Verdict {
	text = strings.ToLower(text)
	for _, w := range c.yesWords {
		if strings.Contains(text, w) {
			return Yes
		}
	}
	for _, w := range c.noWords {
		if strings.Contains(text, w) {
			return No
		}
	}
	return Unknown
}
