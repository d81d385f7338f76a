package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPPredictor calls a model-serving endpoint over HTTP. The request
// body is {"features": [...]} and the response {"estimate": x}. Every
// call is bounded by the client timeout; a timeout counts as a
// predictor failure and aborts the forecast run.
type HTTPPredictor struct {
	URL    string
	Client *http.Client
}

// NewHTTPPredictor builds a predictor client against url.
func NewHTTPPredictor(url string, timeout time.Duration) *HTTPPredictor {
	return &HTTPPredictor{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	Estimate float64 `json:"estimate"`
}

// Predict posts the feature vector to the model server.
func (p *HTTPPredictor) Predict(ctx context.Context, features []float64) (float64, error) {
	body, err := json.Marshal(predictRequest{Features: features})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("predictor returned status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decoding predictor response: %w", err)
	}
	return out.Estimate, nil
}
