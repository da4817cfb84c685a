package gallery_test

import (
	"math"
	"testing"

	"rilliex/internal/domain/gallery"
)

const epsilon = 1e-9

// TestFit verifies the fit-with-margin scale calculation.
func TestFit(t *testing.T) {
	tests := []struct {
		name      string
		container gallery.Size
		media     gallery.Size
		want      float64
	}{
		{
			name:      "wide media in square container",
			container: gallery.Size{W: 400, H: 400},
			media:     gallery.Size{W: 800, H: 400},
			want:      0.45, // min(0.5, 1.0) * 0.9
		},
		{
			name:      "tall media in square container",
			container: gallery.Size{W: 400, H: 400},
			media:     gallery.Size{W: 400, H: 800},
			want:      0.45,
		},
		{
			name:      "media smaller than container",
			container: gallery.Size{W: 400, H: 400},
			media:     gallery.Size{W: 200, H: 100},
			want:      1.8, // min(2.0, 4.0) * 0.9
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gallery.Fit(tt.container, tt.media)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Fit() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCover verifies the viewport-filling scale calculation.
func TestCover(t *testing.T) {
	tests := []struct {
		name      string
		container gallery.Size
		media     gallery.Size
		want      float64
	}{
		{
			name:      "wide media in square container",
			container: gallery.Size{W: 400, H: 400},
			media:     gallery.Size{W: 800, H: 400},
			want:      1.0, // max(0.5, 1.0)
		},
		{
			name:      "media smaller than container",
			container: gallery.Size{W: 400, H: 400},
			media:     gallery.Size{W: 200, H: 100},
			want:      4.0, // max(2.0, 4.0)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gallery.Cover(tt.container, tt.media)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Cover() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestResetScale verifies reset always yields neutral zoom.
func TestResetScale(t *testing.T) {
	if got := gallery.ResetScale(); got != 1.0 {
		t.Errorf("ResetScale() = %v, want 1.0", got)
	}
}

// TestClampScale verifies slider bounds.
func TestClampScale(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.05, 0.1},
		{0.1, 0.1},
		{1.5, 1.5},
		{3.0, 3.0},
		{7.2, 3.0},
	}
	for _, tt := range tests {
		if got := gallery.ClampScale(tt.in); got != tt.want {
			t.Errorf("ClampScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestCentered verifies the locked-center invariant.
func TestCentered(t *testing.T) {
	tr := gallery.Centered(2.5)
	if tr.X != 0 || tr.Y != 0 {
		t.Errorf("Centered() offset = (%v, %v), want (0, 0)", tr.X, tr.Y)
	}
	if tr.Scale != 2.5 {
		t.Errorf("Centered() scale = %v, want 2.5", tr.Scale)
	}
}

// TestPhoto_Validate tests validation of Photo.
func TestPhoto_Validate(t *testing.T) {
	tests := []struct {
		name    string
		photo   gallery.Photo
		wantErr bool
	}{
		{
			name:    "valid image",
			photo:   gallery.Photo{ID: "1", URL: "data:image/jpeg;base64,abcd", Category: gallery.CategoryAction, Type: gallery.TypeImage},
			wantErr: false,
		},
		{
			name:    "valid video",
			photo:   gallery.Photo{ID: "2", URL: "data:video/mp4;base64,abcd", Category: gallery.CategoryLifestyle, Type: gallery.TypeVideo},
			wantErr: false,
		},
		{
			name:    "empty url",
			photo:   gallery.Photo{ID: "3", URL: "", Category: gallery.CategoryGear, Type: gallery.TypeImage},
			wantErr: true,
		},
		{
			name:    "invalid category",
			photo:   gallery.Photo{ID: "4", URL: "x", Category: "selfies", Type: gallery.TypeImage},
			wantErr: true,
		},
		{
			name:    "invalid media type",
			photo:   gallery.Photo{ID: "5", URL: "x", Category: gallery.CategoryGear, Type: "audio"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.photo.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Photo.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
