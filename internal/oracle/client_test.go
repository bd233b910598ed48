package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-hospital/internal/features"
)

func testArtifacts() *Artifacts {
	return &Artifacts{
		Features: []string{"age", "fever", "cough"},
		diseaseByLabel: map[string]string{
			"0": "Influenza",
			"1": "Common Cold",
		},
	}
}

func TestClientPredict(t *testing.T) {
	var got predictRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(map[string]any{
			"predictions": []map[string]any{
				{"label": "0", "probability": 0.72},
				{"label": "1", "probability": 0.18},
				{"label": "5", "probability": 0.10},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testArtifacts())
	vec := features.Vector{"age": 35, "fever": 1, "cough": 0, "ignored": 99}

	predictions, err := c.Predict(context.Background(), vec, 3)
	require.NoError(t, err)

	assert.Equal(t, []float64{35, 1, 0}, got.Features, "features sent in schema order")
	assert.Equal(t, 3, got.TopK)

	require.Len(t, predictions, 3)
	assert.Equal(t, Prediction{Disease: "Influenza", Probability: 0.72}, predictions[0])
	assert.Equal(t, Prediction{Disease: "Common Cold", Probability: 0.18}, predictions[1])
	assert.Equal(t, "5", predictions[2].Disease, "unmapped label passes through")
}

func TestClientPredictTruncatesToTopK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"predictions": []map[string]any{
				{"label": "0", "probability": 0.5},
				{"label": "1", "probability": 0.3},
				{"label": "5", "probability": 0.2},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testArtifacts())

	predictions, err := c.Predict(context.Background(), features.Vector{}, 2)
	require.NoError(t, err)
	assert.Len(t, predictions, 2)
}

func TestClientPredictEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"predictions": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testArtifacts())

	predictions, err := c.Predict(context.Background(), features.Vector{}, 3)
	require.NoError(t, err)
	assert.Empty(t, predictions)
}

func TestClientPredictServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testArtifacts())

	_, err := c.Predict(context.Background(), features.Vector{}, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model server error")
	assert.Contains(t, err.Error(), "model not loaded")
}
