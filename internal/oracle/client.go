package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"smart-hospital/internal/features"
)

// Client calls the model server. One blocking request per prediction,
// no retries; the only timeout is the HTTP client's.
type Client struct {
	baseURL    string
	artifacts  *Artifacts
	httpClient *http.Client
}

func NewClient(baseURL string, artifacts *Artifacts) *Client {
	return &Client{
		baseURL:   baseURL,
		artifacts: artifacts,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type predictRequest struct {
	Features []float64 `json:"features"`
	TopK     int       `json:"top_k"`
}

type predictResponse struct {
	Predictions []struct {
		Label       string  `json:"label"`
		Probability float64 `json:"probability"`
	} `json:"predictions"`
}

// Predict sends the feature vector, ordered per the model schema, and
// returns the ranked predictions with labels resolved to disease names.
// The result is ranked descending and has at most topK entries; an
// empty slice is a valid response meaning the model had nothing to say.
func (c *Client) Predict(ctx context.Context, vec features.Vector, topK int) ([]Prediction, error) {
	ordered := make([]float64, len(c.artifacts.Features))
	for i, name := range c.artifacts.Features {
		ordered[i] = vec[name]
	}

	body, err := json.Marshal(predictRequest{Features: ordered, TopK: topK})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling model server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("model server error: %s - %s", resp.Status, string(respBody))
	}

	var result predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	predictions := make([]Prediction, 0, len(result.Predictions))
	for _, p := range result.Predictions {
		predictions = append(predictions, Prediction{
			Disease:     c.artifacts.DiseaseName(p.Label),
			Probability: p.Probability,
		})
	}
	if len(predictions) > topK {
		predictions = predictions[:topK]
	}
	return predictions, nil
}
