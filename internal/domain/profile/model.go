// Package profile holds the fixed identity dataset for the site owner:
// bio, achievements, coaching details, and the default content the store
// seeds on first run. This data ships with the binary and is the source
// the AI assistant's context is built from.
package profile

// Language codes used for the bilingual fields.
const (
	LangEN = "en"
	LangZH = "zh"
)

// Achievement icon constants
const (
	IconTrophy = "trophy"
	IconMedal  = "medal"
	IconStar   = "star"
)

// Achievement is one competition result line on the achievements list.
type Achievement struct {
	ID      string `json:"id"`
	Year    string `json:"year"`
	TitleEN string `json:"title_en"`
	TitleZH string `json:"title_zh"`
	Icon    string `json:"icon,omitempty"`
}

// Title returns the achievement title in the requested language.
// POST: falls back to English for unknown languages
func (a Achievement) Title(lang string) string {
	if lang == LangZH {
		return a.TitleZH
	}
	return a.TitleEN
}

// Bilingual is a pair of translated strings.
type Bilingual struct {
	EN string
	ZH string
}

// In returns the value for the requested language, defaulting to English.
func (b Bilingual) In(lang string) string {
	if lang == LangZH {
		return b.ZH
	}
	return b.EN
}

// BilingualList is a pair of translated string lists.
type BilingualList struct {
	EN []string
	ZH []string
}

// In returns the list for the requested language, defaulting to English.
func (b BilingualList) In(lang string) []string {
	if lang == LangZH {
		return b.ZH
	}
	return b.EN
}

// CoachingInfo describes the owner's coaching offering.
type CoachingInfo struct {
	Title     Bilingual
	Locations Bilingual
	Targets   BilingualList
	Formats   BilingualList
}
