package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrRateLimited marks a 429 from the image API. The only retryable
// generation failure.
var ErrRateLimited = errors.New("image api rate limited")

// Generator produces an image for a prompt and returns a URL where the
// result can be downloaded.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type OpenAIClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewOpenAIClient() *OpenAIClient {
	model := os.Getenv("OPENAI_IMAGE_MODEL")
	if model == "" {
		model = "dall-e-3"
	}

	return &OpenAIClient{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		model:   model,
		baseURL: "https://api.openai.com/v1/images/generations",
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// NewOpenAIClientWithBaseURL is used by tests to point the client at a
// local server.
func NewOpenAIClientWithBaseURL(baseURL string) *OpenAIClient {
	c := NewOpenAIClient()
	c.baseURL = baseURL
	return c
}

// Generate requests one standard-quality 1024x1024 image
func (g *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing OPENAI_API_KEY")
	}
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	payload := map[string]any{
		"model":   g.model,
		"prompt":  prompt,
		"n":       1,
		"size":    "1024x1024",
		"quality": "standard",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.baseURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("status 429: %w", ErrRateLimited)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image api error (status %d): %s", resp.StatusCode, string(raw))
	}

	var result struct {
		Data []struct {
			URL string `json:"url"`
		} `json:"data"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", errors.New("image api returned no image url")
	}

	return result.Data[0].URL, nil
}
