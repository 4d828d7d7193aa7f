package transcripts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/videochef/recipe-api/internal/platform"
	apperrors "github.com/videochef/recipe-api/pkg/errors"
)

// Remote error messages are truncated before they travel further
const maxErrorBodyLength = 200

// Client fetches transcripts from the universal transcript backend.
// The backend serves all supported platforms through two endpoints:
// /transcript returns existing captions, /transcribe runs AI
// transcription for videos without captions.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
}

// Config holds configuration for the transcript client
type Config struct {
	APIKey string
	Host   string
	// BaseURL overrides the https://<host> default (used in tests)
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a new transcript backend client
func NewClient(cfg Config) *Client {
	if cfg.Host == "" {
		cfg.Host = "video-transcript-scraper.p.rapidapi.com"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://" + cfg.Host
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		host:       cfg.Host,
		apiKey:     cfg.APIKey,
	}
}

var _ Provider = (*Client)(nil)

// transcriptResponse is the envelope both endpoints share
type transcriptResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Transcript []json.RawMessage `json:"transcript"`
		VideoInfo  struct {
			Title     string `json:"title"`
			Thumbnail string `json:"thumbnail"`
		} `json:"video_info"`
	} `json:"data"`
	// Some responses put the transcript at the top level
	Transcript []json.RawMessage `json:"transcript"`
}

// GetTranscript retrieves and normalizes the transcript for a video URL.
// Captions are tried first; AI transcription is the fallback.
func (c *Client) GetTranscript(ctx context.Context, url string, p platform.Platform) (*Transcript, error) {
	if c.apiKey == "" {
		return nil, apperrors.ConfigRequiredError("transcript.api_key")
	}

	log.Printf("[DEBUG] Fetching transcript for %s: %s", p, url)

	// Tier 1: existing captions (cheap)
	result, err := c.fetchCaptions(ctx, url)
	if err != nil {
		return nil, err
	}

	// Tier 2: AI transcription
	if result == nil {
		log.Printf("[DEBUG] No captions for %s, falling back to AI transcription", url)
		result, err = c.transcribe(ctx, url)
		if err != nil {
			return nil, err
		}
	}

	result.Text = JoinText(result.Segments)
	if strings.TrimSpace(result.Text) == "" {
		return nil, apperrors.New(apperrors.ErrCodeEmptyTranscript,
			"empty transcript - video may not have speech")
	}

	log.Printf("[DEBUG] Got %d transcript segments, %d chars", len(result.Segments), len(result.Text))
	return result, nil
}

// fetchCaptions calls the /transcript endpoint. A nil result without error
// means no captions exist and the caller should fall through to tier 2.
func (c *Client) fetchCaptions(ctx context.Context, url string) (*Transcript, error) {
	resp, body, err := c.post(ctx, "/transcript", url)
	if err != nil {
		return nil, err
	}

	// A failing captions endpoint is not fatal, tier 2 may still work
	if resp.StatusCode != http.StatusOK {
		log.Printf("[WARN] Captions endpoint returned status %d", resp.StatusCode)
		return nil, nil
	}

	var decoded transcriptResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		log.Printf("[WARN] Could not decode captions response: %v", err)
		return nil, nil
	}

	if decoded.Status == "error" || len(decoded.Data.Transcript) == 0 {
		return nil, nil
	}

	log.Printf("[DEBUG] Got captions via /transcript")
	return &Transcript{
		Segments:     parseSegments(decoded.Data.Transcript),
		Title:        decoded.Data.VideoInfo.Title,
		ThumbnailURL: decoded.Data.VideoInfo.Thumbnail,
	}, nil
}

// transcribe calls the /transcribe endpoint (AI transcription)
func (c *Client) transcribe(ctx context.Context, url string) (*Transcript, error) {
	resp, body, err := c.post(ctx, "/transcribe", url)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ProviderError("transcript", resp.StatusCode, truncate(string(body)))
	}

	var decoded transcriptResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProvider, "decoding transcribe response")
	}

	if decoded.Status == "error" {
		message := decoded.Message
		if message == "" {
			message = "transcription failed"
		}
		return nil, apperrors.New(apperrors.ErrCodeProvider, truncate(message))
	}

	transcript := decoded.Data.Transcript
	if len(transcript) == 0 {
		transcript = decoded.Transcript
	}
	if len(transcript) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeProvider, "no transcript returned from API")
	}

	return &Transcript{
		Segments:     parseSegments(transcript),
		Title:        decoded.Data.VideoInfo.Title,
		ThumbnailURL: decoded.Data.VideoInfo.Thumbnail,
	}, nil
}

// post sends a video URL to a backend endpoint and reads the full body
func (c *Client) post(ctx context.Context, endpoint, videoURL string) (*http.Response, []byte, error) {
	payload, err := json.Marshal(map[string]string{"video_url": videoURL})
	if err != nil {
		return nil, nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.ErrCodeProvider, "transcript backend unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.ErrCodeProvider, "reading transcript response")
	}

	return resp, body, nil
}

func truncate(s string) string {
	if len(s) > maxErrorBodyLength {
		return s[:maxErrorBodyLength]
	}
	return s
}
