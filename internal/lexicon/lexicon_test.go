package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single symptom",
			text: "I have a terrible headache",
			want: []string{"headache"},
		},
		{
			name: "multiple symptoms in canonical order",
			text: "I'm feeling very tired and I have a bad headache",
			want: []string{"fatigue", "headache"},
		},
		{
			name: "synonym phrases",
			text: "my throat hurts and I keep throwing up",
			want: []string{"sore_throat", "vomiting"},
		},
		{
			name: "case insensitive",
			text: "FEVER and COUGH",
			want: []string{"fever", "cough"},
		},
		{
			name: "negation is not understood",
			text: "no headache today",
			want: []string{"headache"},
		},
		{
			name: "nothing recognized",
			text: "I feel great, thanks",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Identify(tt.text))
		})
	}
}

func TestIdentifyReturnsCanonicalIdentifiers(t *testing.T) {
	for _, id := range Identify("fever cough sore throat tired headache nausea vomit diarrhea breathless chest pain runny nose body ache loss of smell") {
		assert.True(t, IsSymptom(id), "unexpected identifier %q", id)
	}
}

func TestIsSymptom(t *testing.T) {
	assert.True(t, IsSymptom("fever"))
	assert.True(t, IsSymptom("loss_of_smell"))
	assert.False(t, IsSymptom("comorbid_diabetes"))
	assert.False(t, IsSymptom("unicorn"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Fever", DisplayName("fever"))
	assert.Equal(t, "Shortness Of Breath", DisplayName("shortness_of_breath"))
	assert.Equal(t, "Sore Throat", DisplayName("sore_throat"))
}

func TestAnswerClassifier(t *testing.T) {
	c := NewAnswerClassifier()

	tests := []struct {
		text string
		want Verdict
	}{
		{"Yes", Yes},
		{"yeah I think so", Yes},
		{"I have that sometimes", Yes},
		{"I'm experiencing it right now", Yes},
		{"no", No},
		{"nope", No},
		{"nah", No},
		// The yes set is searched first, so "have" wins even inside a
		// denial. This mirrors the keyword matcher's known limitation.
		{"I don't have it", Yes},
		{"perhaps", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestConfirmClassifierDefaultsToDecline(t *testing.T) {
	c := NewConfirmClassifier()

	require.Equal(t, Yes, c.Classify("yes please"))
	assert.Equal(t, Unknown, c.Classify("no thanks"), "confirm classifier has no explicit no set")
	assert.Equal(t, Unknown, c.Classify("whatever"))
}
