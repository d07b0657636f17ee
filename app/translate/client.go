package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const DefaultEndpoint = "https://libretranslate.com"

// Translator turns text from one language into another.
type Translator interface {
	Translate(ctx context.Context, text, from, to, engine string) (string, error)
}

// HTTPTranslator talks to a LibreTranslate compatible API.
type HTTPTranslator struct {
	endpoint string
	apiKey   string
	client   *http.Client
	limiter  *rate.Limiter
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
	Engine string `json:"engine,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

func NewHTTPTranslator(endpoint, apiKey string, timeout time.Duration) *HTTPTranslator {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPTranslator{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

func (t *HTTPTranslator) Translate(ctx context.Context, text, from, to, engine string) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait failed: %w", err)
	}

	body, err := json.Marshal(translateRequest{
		Q:      text,
		Source: from,
		Target: to,
		Format: "text",
		APIKey: t.apiKey,
		Engine: engine,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result translateResponse
	if err := json.Unmarshal(data, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("translator returned status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translator returned status %d: %s", resp.StatusCode, result.Error)
	}
	if result.TranslatedText == "" {
		return "", fmt.Errorf("translator returned empty text")
	}

	return result.TranslatedText, nil
}
