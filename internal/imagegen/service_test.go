package imagegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeGenerator struct {
	calls     int
	failFirst int   // return ErrRateLimited for the first N calls
	err       error // terminal error returned on every call
	url       string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.calls <= f.failFirst {
		return "", fmt.Errorf("status 429: %w", ErrRateLimited)
	}
	return f.url, nil
}

type fakeUploader struct {
	key         string
	contentType string
	data        []byte
}

func (f *fakeUploader) UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.key = key
	f.contentType = contentType
	f.data = data
	return "https://cdn.example.com/" + key, nil
}

func testJPEG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 300, 300))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestService(gen Generator, store Uploader) *Service {
	s := NewService(gen, store, nil)
	s.backoffBase = time.Millisecond
	return s
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestAcquire_Success(t *testing.T) {
	payload := testJPEG(t)

	download := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(payload)
	}))
	defer download.Close()

	gen := &fakeGenerator{url: download.URL + "/generated.png"}
	store := &fakeUploader{}

	service := newTestService(gen, store)

	url, err := service.Acquire(context.Background(), "Paneer Tikka", "Starters", "chargrilled")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(url, "https://cdn.example.com/catalog/") {
		t.Errorf("unexpected public url %q", url)
	}
	if !strings.HasSuffix(store.key, ".jpg") {
		t.Errorf("expected .jpg key, got %q", store.key)
	}
	if store.contentType != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", store.contentType)
	}
	if len(store.data) == 0 {
		t.Error("expected compressed bytes to be uploaded")
	}
}

func TestAcquire_RetriesRateLimit(t *testing.T) {
	payload := testJPEG(t)

	download := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer download.Close()

	gen := &fakeGenerator{failFirst: 2, url: download.URL}
	service := newTestService(gen, &fakeUploader{})

	if _, err := service.Acquire(context.Background(), "Samosa", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.calls != 3 {
		t.Fatalf("expected 3 generation attempts, got %d", gen.calls)
	}
}

func TestAcquire_RateLimitBudgetExhausted(t *testing.T) {
	gen := &fakeGenerator{failFirst: 10}
	service := newTestService(gen, &fakeUploader{})

	_, err := service.Acquire(context.Background(), "Samosa", "", "")
	if err == nil {
		t.Fatal("expected terminal failure")
	}

	// Initial attempt plus 3 retries
	if gen.calls != 4 {
		t.Fatalf("expected 4 attempts, got %d", gen.calls)
	}
}

func TestAcquire_UpstreamErrorIsTerminal(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("image api error (status 500): boom")}
	service := newTestService(gen, &fakeUploader{})

	_, err := service.Acquire(context.Background(), "Samosa", "", "")
	if err == nil {
		t.Fatal("expected error")
	}

	if gen.calls != 1 {
		t.Fatalf("non-429 errors must not retry, got %d attempts", gen.calls)
	}
}

func TestAcquire_DownloadFailureIsTerminal(t *testing.T) {
	download := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer download.Close()

	gen := &fakeGenerator{url: download.URL}
	service := newTestService(gen, &fakeUploader{})

	_, err := service.Acquire(context.Background(), "Samosa", "", "")
	if err == nil || !strings.Contains(err.Error(), "download") {
		t.Fatalf("expected download failure, got %v", err)
	}
}

func TestAcquire_ContextCancelledDuringBackoff(t *testing.T) {
	gen := &fakeGenerator{failFirst: 10}

	service := NewService(gen, &fakeUploader{}, nil)
	service.backoffBase = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := service.Acquire(ctx, "Samosa", "", "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
