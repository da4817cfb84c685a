package social

import (
	"errors"
	"strings"
)

// Platform constants
const (
	PlatformYouTube     = "youtube"
	PlatformInstagram   = "instagram"
	PlatformBilibili    = "bilibili"
	PlatformTikTok      = "tiktok"
	PlatformDouyin      = "douyin"
	PlatformTwitter     = "twitter"
	PlatformXiaohongshu = "xiaohongshu"
	PlatformWeibo       = "weibo"
	PlatformLinkedIn    = "linkedin"
	PlatformOther       = "other"
)

// ValidPlatforms contains all valid platform values. The first entry is
// the default offered by the link editor.
var ValidPlatforms = []string{
	PlatformYouTube,
	PlatformInstagram,
	PlatformBilibili,
	PlatformTikTok,
	PlatformDouyin,
	PlatformTwitter,
	PlatformXiaohongshu,
	PlatformWeibo,
	PlatformLinkedIn,
	PlatformOther,
}

// Domain errors
var (
	ErrEmptyHandle     = errors.New("handle cannot be empty")
	ErrEmptyURL        = errors.New("url cannot be empty")
	ErrInvalidPlatform = errors.New("platform is not a recognised social platform")
)

// Link represents one entry in the social-media directory. Followers is a
// free-text label (e.g. "120K"); it is displayed verbatim, never parsed.
type Link struct {
	ID        string `json:"id"`
	Platform  string `json:"platform"`
	Handle    string `json:"handle"`
	URL       string `json:"url"`
	Followers string `json:"followers"`
}

// Validate checks if the Link has valid data.
// PRE: Link struct is populated
// POST: Returns nil if valid, error otherwise
func (l *Link) Validate() error {
	if strings.TrimSpace(l.Handle) == "" {
		return ErrEmptyHandle
	}
	if strings.TrimSpace(l.URL) == "" {
		return ErrEmptyURL
	}
	if !isValidPlatform(l.Platform) {
		return ErrInvalidPlatform
	}
	return nil
}

func isValidPlatform(p string) bool {
	for _, v := range ValidPlatforms {
		if v == p {
			return true
		}
	}
	return false
}
