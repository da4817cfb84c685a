package gallery

import (
	"errors"
	"strings"
)

// Category constants
const (
	CategoryAction    = "action"
	CategoryLifestyle = "lifestyle"
	CategoryGear      = "gear"
	CategoryTraining  = "training"
)

// ValidCategories contains all valid category values.
var ValidCategories = []string{CategoryAction, CategoryLifestyle, CategoryGear, CategoryTraining}

// Media type constants
const (
	TypeImage = "image"
	TypeVideo = "video"
)

// DefaultCategory is assigned to fresh uploads before the owner edits them.
const DefaultCategory = CategoryLifestyle

// Domain errors
var (
	ErrEmptyURL        = errors.New("photo url cannot be empty")
	ErrInvalidCategory = errors.New("category must be one of: action, lifestyle, gear, training")
	ErrInvalidType     = errors.New("media type must be 'image' or 'video'")
)

// Photo represents one gallery entry: an uploaded image or video together
// with its display framing and bilingual captions.
type Photo struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"` // encoded media data or a remote reference
	Alt       string    `json:"alt"`
	Category  string    `json:"category"`
	Type      string    `json:"type"` // image or video
	Transform Transform `json:"transform"`
	CaptionEN string    `json:"caption_en,omitempty"`
	CaptionZH string    `json:"caption_zh,omitempty"`
}

// Validate checks if the Photo has valid data.
// PRE: Photo struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Photo) Validate() error {
	if strings.TrimSpace(p.URL) == "" {
		return ErrEmptyURL
	}
	if !isValidCategory(p.Category) {
		return ErrInvalidCategory
	}
	if p.Type != TypeImage && p.Type != TypeVideo {
		return ErrInvalidType
	}
	return nil
}

func isValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}
