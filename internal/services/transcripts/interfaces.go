package transcripts

import (
	"context"

	"github.com/videochef/recipe-api/internal/platform"
)

// Transcript is the normalized result of a transcript fetch
type Transcript struct {
	// Text is the full transcript, segment texts joined by single spaces
	Text string
	// Title and ThumbnailURL are best-effort video metadata from the backend
	Title        string
	ThumbnailURL string
	// Segments preserves the provider's emission order
	Segments []Segment
}

// Segment is a single transcript segment with best-effort timing
type Segment struct {
	Text string `json:"text"`
	// Offset is milliseconds since video start; nil when the provider
	// gives no timing information
	Offset *int64 `json:"offset,omitempty"`
	// Duration is the segment length in milliseconds
	Duration *int64 `json:"duration,omitempty"`
}

// Provider fetches speech transcripts for video URLs
type Provider interface {
	// GetTranscript retrieves the transcript for a canonical video URL.
	// The platform is used for logging only; the backend is universal.
	GetTranscript(ctx context.Context, url string, p platform.Platform) (*Transcript, error)
}
