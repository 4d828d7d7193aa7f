package embeds

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/videochef/recipe-api/internal/platform"
)

// Embed holds platform embed markup and thumbnail for a video
type Embed struct {
	HTML         string `json:"html,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	ProviderName string `json:"provider_name,omitempty"`
}

// Resolver fetches embeddable markup for a video URL
type Resolver interface {
	// GetEmbed returns embed markup for the video, or nil when none is
	// available. Embed enrichment is best-effort; implementations never
	// return an error that should abort a pipeline run.
	GetEmbed(ctx context.Context, videoURL string, p platform.Platform) *Embed
}

// OEmbedResolver resolves embeds via public oEmbed endpoints where the
// platform offers one without app review (YouTube, TikTok), and builds
// iframe markup directly for the platforms that gate oEmbed behind app
// review (Instagram, Facebook).
type OEmbedResolver struct {
	httpClient *http.Client

	// endpoint overrides for tests
	tiktokOEmbedURL  string
	youtubeOEmbedURL string
}

// ResolverOption is a functional option for configuring the resolver
type ResolverOption func(*OEmbedResolver)

// WithTikTokEndpoint overrides the TikTok oEmbed endpoint
func WithTikTokEndpoint(endpoint string) ResolverOption {
	return func(r *OEmbedResolver) {
		r.tiktokOEmbedURL = endpoint
	}
}

// WithYouTubeEndpoint overrides the YouTube oEmbed endpoint
func WithYouTubeEndpoint(endpoint string) ResolverOption {
	return func(r *OEmbedResolver) {
		r.youtubeOEmbedURL = endpoint
	}
}

// NewResolver creates an embed resolver
func NewResolver(timeout time.Duration, opts ...ResolverOption) *OEmbedResolver {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	r := &OEmbedResolver{
		httpClient:       &http.Client{Timeout: timeout},
		tiktokOEmbedURL:  "https://www.tiktok.com/oembed",
		youtubeOEmbedURL: "https://www.youtube.com/oembed",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ Resolver = (*OEmbedResolver)(nil)

// GetEmbed fetches or constructs embed markup for the video URL.
// All failures degrade to nil.
func (r *OEmbedResolver) GetEmbed(ctx context.Context, videoURL string, p platform.Platform) *Embed {
	switch p {
	case platform.TikTok:
		return r.fetchOEmbed(ctx, fmt.Sprintf("%s?url=%s", r.tiktokOEmbedURL, url.QueryEscape(videoURL)))
	case platform.YouTube:
		return r.fetchOEmbed(ctx, fmt.Sprintf("%s?url=%s&format=json", r.youtubeOEmbedURL, url.QueryEscape(videoURL)))
	case platform.Instagram:
		return &Embed{
			HTML: fmt.Sprintf(`<iframe src="%s/embed" width="400" height="480" frameborder="0" scrolling="no" allowtransparency="true"></iframe>`, videoURL),
			ProviderName: "Instagram",
		}
	case platform.Facebook:
		return &Embed{
			HTML: fmt.Sprintf(`<iframe src="https://www.facebook.com/plugins/video.php?href=%s&show_text=false&width=400" width="400" height="300" frameborder="0" allowfullscreen></iframe>`, url.QueryEscape(videoURL)),
			ProviderName: "Facebook",
		}
	}
	return nil
}

func (r *OEmbedResolver) fetchOEmbed(ctx context.Context, endpoint string) *Embed {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Printf("[WARN] oEmbed fetch failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[WARN] oEmbed endpoint returned status %d", resp.StatusCode)
		return nil
	}

	var embed Embed
	if err := json.NewDecoder(resp.Body).Decode(&embed); err != nil {
		log.Printf("[WARN] Could not decode oEmbed response: %v", err)
		return nil
	}

	return &embed
}
