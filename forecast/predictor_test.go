package forecast

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHTTPPredictor(t *testing.T) {
	var received predictRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(predictResponse{Estimate: 12.5})
	}))
	defer server.Close()

	predictor := NewHTTPPredictor(server.URL, time.Second)
	features := []float64{1, 0, 4, 9, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0}

	estimate, err := predictor.Predict(context.Background(), features)
	assert.NoError(t, err)
	assert.Equal(t, 12.5, estimate)
	assert.Equal(t, features, received.Features)
}

func TestHTTPPredictorNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	predictor := NewHTTPPredictor(server.URL, time.Second)
	_, err := predictor.Predict(context.Background(), make([]float64, 18))
	assert.Error(t, err)
}
