package schedule_test

import (
	"testing"

	"rilliex/internal/domain/schedule"
)

// TestEvent_Validate tests validation of Event.
func TestEvent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		event   schedule.Event
		wantErr bool
	}{
		{
			name:    "valid training event",
			event:   schedule.Event{ID: "1", Day: schedule.Monday, Time: "10:00 AM", Title: "Trick Shot Filming", Location: "Clay Court 1", Type: schedule.TypeTraining},
			wantErr: false,
		},
		{
			name:    "valid tournament on sunday",
			event:   schedule.Event{ID: "2", Day: schedule.Sunday, Time: "09:00 AM", Title: "City Open", Type: schedule.TypeTournament},
			wantErr: false,
		},
		{
			name:    "empty title",
			event:   schedule.Event{ID: "3", Day: schedule.Monday, Time: "10:00 AM", Title: "", Type: schedule.TypeTraining},
			wantErr: true,
		},
		{
			name:    "whitespace title",
			event:   schedule.Event{ID: "4", Day: schedule.Monday, Time: "10:00 AM", Title: "   ", Type: schedule.TypeTraining},
			wantErr: true,
		},
		{
			name:    "invalid day",
			event:   schedule.Event{ID: "5", Day: "Funday", Time: "10:00 AM", Title: "Filming", Type: schedule.TypeTraining},
			wantErr: true,
		},
		{
			name:    "full day name rejected",
			event:   schedule.Event{ID: "6", Day: "Monday", Time: "10:00 AM", Title: "Filming", Type: schedule.TypeTraining},
			wantErr: true,
		},
		{
			name:    "invalid type",
			event:   schedule.Event{ID: "7", Day: schedule.Monday, Time: "10:00 AM", Title: "Filming", Type: "rest"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Event.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestEvent_ApplyDefaults tests editor defaults for blank fields.
func TestEvent_ApplyDefaults(t *testing.T) {
	e := schedule.Event{Day: schedule.Tuesday, Title: "Editing Session"}
	e.ApplyDefaults()
	if e.Time != schedule.DefaultTime {
		t.Errorf("Time = %q, want %q", e.Time, schedule.DefaultTime)
	}
	if e.Type != schedule.TypeTraining {
		t.Errorf("Type = %q, want %q", e.Type, schedule.TypeTraining)
	}

	// Populated fields are left alone
	e2 := schedule.Event{Day: schedule.Friday, Title: "Exhibition", Time: "02:00 PM", Type: schedule.TypeMatch}
	e2.ApplyDefaults()
	if e2.Time != "02:00 PM" || e2.Type != schedule.TypeMatch {
		t.Errorf("ApplyDefaults overwrote populated fields: %+v", e2)
	}
}
