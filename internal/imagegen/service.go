package imagegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxGenerateRetries  = 3
	initialBackoffDelay = 2 * time.Second
	downloadTimeout     = 30 * time.Second
)

// Uploader stores image bytes and returns a public URL.
type Uploader interface {
	UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type Service struct {
	gen   Generator
	store Uploader
	log   *zap.SugaredLogger

	client *http.Client

	// backoffBase is the first retry delay; tests shrink it.
	backoffBase time.Duration
}

func NewService(gen Generator, store Uploader, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Service{
		gen:   gen,
		store: store,
		log:   log,
		client: &http.Client{
			Timeout: downloadTimeout,
		},
		backoffBase: initialBackoffDelay,
	}
}

// Acquire runs the full pipeline for one item: generate, download,
// compress to budget, persist. Returns the public URL of the stored
// image or a terminal failure.
func (s *Service) Acquire(
	ctx context.Context,
	itemName string,
	category string,
	description string,
) (string, error) {

	prompt := BuildDishPrompt(itemName, category, description)

	imageURL, err := s.generateWithRetry(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	data, err := s.download(ctx, imageURL)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}

	compressed, err := CompressToBudget(data)
	if err != nil {
		return "", fmt.Errorf("compress: %w", err)
	}

	s.log.Debugw("image compressed",
		"item", itemName,
		"original_bytes", len(data),
		"final_bytes", len(compressed),
	)

	key := fmt.Sprintf("catalog/%s.jpg", uuid.New().String())

	publicURL, err := s.store.UploadBytes(ctx, key, compressed, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}

	return publicURL, nil
}

// generateWithRetry retries rate-limited requests with exponential
// backoff (2s, 4s, 8s). Any other failure is terminal. A new request is
// never issued before the previous one has finished.
func (s *Service) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	delay := s.backoffBase

	var lastErr error

	for attempt := 0; attempt <= maxGenerateRetries; attempt++ {
		url, err := s.gen.Generate(ctx, prompt)
		if err == nil {
			return url, nil
		}
		lastErr = err

		if !isRateLimited(err) || attempt == maxGenerateRetries {
			return "", err
		}

		s.log.Warnw("image api rate limited, backing off",
			"attempt", attempt+1,
			"delay", delay,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return "", lastErr
}

func isRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

func (s *Service) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
