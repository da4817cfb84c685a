package gallery

// Scale bounds exposed by the media editor's zoom slider.
const (
	MinScale = 0.1
	MaxScale = 3.0
)

// fitMargin leaves 10% breathing room around fully-visible media.
const fitMargin = 0.9

// Transform describes how a photo or video is framed within the fixed
// square viewport. The media is always rendered centered: X and Y are
// kept for the stored shape but the editor only ever varies Scale, so
// every persisted transform has X == 0 and Y == 0.
type Transform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// DefaultTransform is the framing assigned to fresh uploads.
func DefaultTransform() Transform {
	return Transform{X: 0, Y: 0, Scale: 1}
}

// Centered returns a transform with the given scale and a locked center.
// POST: result has X == 0 and Y == 0
func Centered(scale float64) Transform {
	return Transform{X: 0, Y: 0, Scale: scale}
}

// Size is a width/height pair in pixels.
type Size struct {
	W float64
	H float64
}

// Fit returns the scale at which the entire media is visible inside the
// container with a 10% margin.
// PRE: media.W > 0 and media.H > 0
func Fit(container, media Size) float64 {
	scaleW := container.W / media.W
	scaleH := container.H / media.H
	if scaleW < scaleH {
		return scaleW * fitMargin
	}
	return scaleH * fitMargin
}

// Cover returns the scale at which the media fully fills the container,
// overflowing on the longer axis.
// PRE: media.W > 0 and media.H > 0
func Cover(container, media Size) float64 {
	scaleW := container.W / media.W
	scaleH := container.H / media.H
	if scaleW > scaleH {
		return scaleW
	}
	return scaleH
}

// ResetScale returns the neutral zoom level.
func ResetScale() float64 {
	return 1.0
}

// ClampScale bounds a scale to the editor's slider range.
// POST: result is within [MinScale, MaxScale]
func ClampScale(scale float64) float64 {
	if scale < MinScale {
		return MinScale
	}
	if scale > MaxScale {
		return MaxScale
	}
	return scale
}
