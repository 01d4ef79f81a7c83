package translate

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

var ErrTranslationFailed = errors.New("translation failed")

// Client talks to a LibreTranslate compatible endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint string, apiKey string) *Client {
	return &Client{
		endpoint:   strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

func (client *Client) Translate(ctx context.Context, text string, source string, target string) (string, error) {
	if source == "" {
		source = AutoDetect
	}
	if !needsTranslation(text, source, target) {
		return text, nil
	}

	body, err := json.Marshal(translateRequest{
		Query:  text,
		Source: source,
		Target: target,
		Format: "text",
		APIKey: client.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("encode translate request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.endpoint+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrTranslationFailed, err)
	}

	var payload translateResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("%w: status %d: decode response: %v", ErrTranslationFailed, response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrTranslationFailed, response.StatusCode, payload.Error)
	}
	return payload.TranslatedText, nil
}
