package platform

import "regexp"

// Platform identifies the video hosting platform of a source URL
type Platform string

const (
	TikTok    Platform = "tiktok"
	Instagram Platform = "instagram"
	YouTube   Platform = "youtube"
	Facebook  Platform = "facebook"
)

// All lists every supported platform in declaration order.
// Detection iterates this slice, so declaration order is the tie-break
// if two pattern groups ever overlap.
var All = []Platform{TikTok, Instagram, YouTube, Facebook}

// Valid reports whether p is a member of the closed platform set
func (p Platform) Valid() bool {
	switch p {
	case TikTok, Instagram, YouTube, Facebook:
		return true
	}
	return false
}

// DisplayName returns the human-readable platform name
func (p Platform) DisplayName() string {
	switch p {
	case TikTok:
		return "TikTok"
	case Instagram:
		return "Instagram"
	case YouTube:
		return "YouTube"
	case Facebook:
		return "Facebook"
	}
	return string(p)
}

// Icon returns the glyph used for the platform in listings
func (p Platform) Icon() string {
	switch p {
	case TikTok:
		return "♪"
	case Instagram:
		return "📷"
	case YouTube:
		return "▶"
	case Facebook:
		return "📘"
	}
	return ""
}

// patterns maps each platform to the URL shapes it recognizes:
// canonical video URLs, shorts, and share/short-link forms
var patterns = map[Platform][]*regexp.Regexp{
	TikTok: {
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?tiktok\.com/@[\w.-]+/video/\d+`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:vm|vt)\.tiktok\.com/\w+`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?tiktok\.com/t/\w+`),
	},
	Instagram: {
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?instagram\.com/(?:reel|p)/[\w-]+`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?instagr\.am/(?:reel|p)/[\w-]+`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?instagram\.com/share/[\w-]+`),
	},
	YouTube: {
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/watch\?v=[\w-]+`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/shorts/[\w-]+`),
		regexp.MustCompile(`(?i)(?:https?://)?youtu\.be/[\w-]+`),
	},
	Facebook: {
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?facebook\.com/[\w.-]+/videos/\d+`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?facebook\.com/(?:watch|reel)/?\?v=\d+`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?facebook\.com/reel/\d+`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?facebook\.com/share/[\w/]+`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?fb\.watch/\w+`),
	},
}

// sharePatterns are the share/short-link forms that need redirect
// resolution before the canonical URL is known. Subset of patterns.
var sharePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)facebook\.com/share/`),
	regexp.MustCompile(`(?i)instagram\.com/share/`),
	regexp.MustCompile(`(?i)vm\.tiktok\.com/`),
	regexp.MustCompile(`(?i)vt\.tiktok\.com/`),
	regexp.MustCompile(`(?i)tiktok\.com/t/`),
	regexp.MustCompile(`(?i)fb\.watch/`),
	regexp.MustCompile(`(?i)youtu\.be/`),
}

// Detect returns the platform whose pattern group matches the URL.
// The second return is false when no pattern matches.
func Detect(url string) (Platform, bool) {
	for _, p := range All {
		for _, re := range patterns[p] {
			if re.MatchString(url) {
				return p, true
			}
		}
	}
	return "", false
}

// IsShareURL reports whether the URL is a share/short-link form that
// needs redirect resolution to reveal the canonical content URL
func IsShareURL(url string) bool {
	for _, re := range sharePatterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// IsValidVideoURL reports whether the URL belongs to any supported platform
func IsValidVideoURL(url string) bool {
	_, ok := Detect(url)
	return ok
}
