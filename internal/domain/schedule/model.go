package schedule

import (
	"errors"
	"strings"
)

// Day of week constants (short form, as displayed in the weekly grid)
const (
	Monday    = "Mon"
	Tuesday   = "Tue"
	Wednesday = "Wed"
	Thursday  = "Thu"
	Friday    = "Fri"
	Saturday  = "Sat"
	Sunday    = "Sun"
)

// ValidDays contains all valid day values in week order.
var ValidDays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Event type constants
const (
	TypeTraining   = "training"
	TypeMatch      = "match"
	TypeTournament = "tournament"
)

// ValidTypes contains all valid event type values.
var ValidTypes = []string{TypeTraining, TypeMatch, TypeTournament}

// Defaults applied by the event editor when a field is left blank.
const (
	DefaultTime = "10:00 AM"
	DefaultType = TypeTraining
)

// Domain errors
var (
	ErrEmptyTitle  = errors.New("event title cannot be empty")
	ErrInvalidDay  = errors.New("day must be a valid day of the week")
	ErrInvalidType = errors.New("event type must be one of: training, match, tournament")
)

// Event represents one recurring slot in the creator's weekly schedule,
// e.g. a filming day, an editing block, or a match.
type Event struct {
	ID       string `json:"id"`
	Day      string `json:"dayOfWeek"` // Mon..Sun
	Time     string `json:"time"`     // display string, e.g. "10:00 AM"
	Title    string `json:"title"`
	Location string `json:"location"`
	Type     string `json:"type"` // training, match, tournament
	Details  string `json:"details,omitempty"`
}

// Validate checks if the Event has valid data.
// PRE: Event struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if !isValidDay(e.Day) {
		return ErrInvalidDay
	}
	if !isValidType(e.Type) {
		return ErrInvalidType
	}
	return nil
}

// ApplyDefaults fills blank Time and Type with the editor defaults.
// POST: Time and Type are non-empty
func (e *Event) ApplyDefaults() {
	if strings.TrimSpace(e.Time) == "" {
		e.Time = DefaultTime
	}
	if strings.TrimSpace(e.Type) == "" {
		e.Type = DefaultType
	}
}

func isValidDay(day string) bool {
	for _, d := range ValidDays {
		if d == day {
			return true
		}
	}
	return false
}

func isValidType(t string) bool {
	for _, v := range ValidTypes {
		if v == t {
			return true
		}
	}
	return false
}
