package platform

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Some platforms vary share-link redirect behavior by client, so the
// resolver impersonates a mobile browser.
const mobileUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"

// Resolver canonicalizes share/short links by following redirects
type Resolver struct {
	// follow issues HEAD requests with automatic redirect handling
	follow *http.Client
	// manual issues GET requests without following redirects, so the
	// Location header can be read directly when HEAD is rejected
	manual *http.Client
}

// NewResolver creates a redirect resolver with the given timeout
func NewResolver(timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Resolver{
		follow: &http.Client{Timeout: timeout},
		manual: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Resolve follows redirects on a share/short URL to get the canonical URL.
// Non-share URLs are returned unchanged. Resolution failures also return
// the input unchanged; the classifier downstream rejects what it cannot
// recognize.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) string {
	if !IsShareURL(rawURL) {
		return rawURL
	}

	if resolved, ok := r.resolveHead(ctx, rawURL); ok {
		log.Printf("[DEBUG] Resolved share URL %s -> %s", rawURL, resolved)
		return resolved
	}

	// HEAD failed, retry with GET and read the Location header directly
	if resolved, ok := r.resolveGet(ctx, rawURL); ok {
		log.Printf("[DEBUG] Resolved share URL %s -> %s (via GET)", rawURL, resolved)
		return resolved
	}

	log.Printf("[WARN] Could not resolve share URL %s, using as-is", rawURL)
	return rawURL
}

func (r *Resolver) resolveHead(ctx context.Context, rawURL string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", mobileUserAgent)

	resp, err := r.follow.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.Request == nil || resp.Request.URL == nil {
		return "", false
	}
	return resp.Request.URL.String(), true
}

func (r *Resolver) resolveGet(ctx context.Context, rawURL string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", mobileUserAgent)

	resp, err := r.manual.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	location := resp.Header.Get("Location")
	if location == "" {
		return "", false
	}
	return location, true
}
