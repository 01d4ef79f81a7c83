package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrClassifierUnavailable = errors.New("classifier unavailable")

// HTTPClient calls a TensorFlow Serving style REST predict endpoint.
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewHTTPClient(endpoint string) *HTTPClient {
	return &HTTPClient{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type predictRequest struct {
	Instances []Tensor `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
	Error       string      `json:"error"`
}

func (client *HTTPClient) Classify(ctx context.Context, tensor Tensor) (int, error) {
	body, err := json.Marshal(predictRequest{Instances: []Tensor{tensor}})
	if err != nil {
		return 0, fmt.Errorf("encode predict request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build predict request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, 4<<20))
	if err != nil {
		return 0, fmt.Errorf("%w: read response: %v", ErrClassifierUnavailable, err)
	}
	var payload predictResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return 0, fmt.Errorf("%w: status %d: decode response: %v", ErrClassifierUnavailable, response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d: %s", ErrClassifierUnavailable, response.StatusCode, payload.Error)
	}
	if len(payload.Predictions) == 0 || len(payload.Predictions[0]) == 0 {
		return 0, fmt.Errorf("%w: empty predictions", ErrClassifierUnavailable)
	}
	return argmax(payload.Predictions[0]), nil
}

// argmax returns the first index holding the largest score.
func argmax(scores []float64) int {
	best := 0
	for index, score := range scores {
		if score > scores[best] {
			best = index
		}
	}
	return best
}
