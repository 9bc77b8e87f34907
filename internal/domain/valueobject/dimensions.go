// Package valueobject contains value objects that represent concepts without identity.
package valueobject

import (
	"errors"
	"fmt"
)

// Dimension schema errors.
var (
	ErrInvalidAxisRange  = errors.New("axis range minimum cannot exceed maximum")
	ErrNonPositiveAxis   = errors.New("axis range must be positive")
	ErrDefaultOutOfRange = errors.New("axis default must lie within the range")
)

// AxisRange declares the adjustable extent of one product axis in millimeters.
// A fixed (non-adjustable) axis has MinMm == MaxMm.
type AxisRange struct {
	// MinMm is the smallest allowed value in millimeters.
	MinMm float64 `json:"min_mm"`

	// MaxMm is the largest allowed value in millimeters.
	MaxMm float64 `json:"max_mm"`

	// DefaultMm is the value used when the caller supplies none.
	// Zero means "no declared default"; the minimum is used instead.
	DefaultMm float64 `json:"default_mm,omitempty"`
}

// FixedAxis creates a non-adjustable axis locked to a single value.
//
// Parameters:
//   - valueMm: the fixed axis value in millimeters
//
// Returns:
//   - AxisRange: range with min == max == valueMm
func FixedAxis(valueMm float64) AxisRange {
	return AxisRange{MinMm: valueMm, MaxMm: valueMm, DefaultMm: valueMm}
}

// IsFixed reports whether the axis admits exactly one value.
func (a AxisRange) IsFixed() bool {
	return a.MinMm == a.MaxMm
}

// Contains reports whether v lies within [MinMm, MaxMm].
func (a AxisRange) Contains(v float64) bool {
	return v >= a.MinMm && v <= a.MaxMm
}

// Clamp forces v into [MinMm, MaxMm].
func (a AxisRange) Clamp(v float64) float64 {
	if v < a.MinMm {
		return a.MinMm
	}
	if v > a.MaxMm {
		return a.MaxMm
	}
	return v
}

// Default returns the declared default, falling back to the minimum.
func (a AxisRange) Default() float64 {
	if a.DefaultMm != 0 {
		return a.DefaultMm
	}
	return a.MinMm
}

// Validate checks the axis invariants: positive extent, min <= max,
// and a declared default inside the range.
func (a AxisRange) Validate() error {
	if a.MinMm <= 0 || a.MaxMm <= 0 {
		return ErrNonPositiveAxis
	}
	if a.MinMm > a.MaxMm {
		return ErrInvalidAxisRange
	}
	if a.DefaultMm != 0 && !a.Contains(a.DefaultMm) {
		return ErrDefaultOutOfRange
	}
	return nil
}

// DimensionSchema declares the three adjustable axes of a product.
// All values are millimeters.
type DimensionSchema struct {
	// Width is the horizontal axis facing the viewer.
	Width AxisRange `json:"width"`

	// Height is the vertical axis.
	Height AxisRange `json:"height"`

	// Depth is the axis away from the viewer.
	Depth AxisRange `json:"depth"`
}

// Validate checks every axis of the schema.
//
// Returns:
//   - error: the first axis violation found, or nil
func (s DimensionSchema) Validate() error {
	for _, axis := range []struct {
		name string
		r    AxisRange
	}{
		{"width", s.Width},
		{"height", s.Height},
		{"depth", s.Depth},
	} {
		if err := axis.r.Validate(); err != nil {
			return fmt.Errorf("%s: %w", axis.name, err)
		}
	}
	return nil
}

// Dimensions is a resolved set of working dimensions for one pricing or
// placement call. Values always lie within the owning schema's ranges.
type Dimensions struct {
	// WidthMm in millimeters.
	WidthMm float64 `json:"width_mm"`

	// HeightMm in millimeters.
	HeightMm float64 `json:"height_mm"`

	// DepthMm in millimeters.
	DepthMm float64 `json:"depth_mm"`
}

// VolumeMm3 calculates the reference volume in cubic millimeters.
//
// Returns:
//   - float64: width × depth × height in mm³
func (d Dimensions) VolumeMm3() float64 {
	return d.WidthMm * d.DepthMm * d.HeightMm
}

// IsEmpty checks if all dimensions are zero.
func (d Dimensions) IsEmpty() bool {
	return d.WidthMm == 0 && d.HeightMm == 0 && d.DepthMm == 0
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted dimensions (e.g., "600x720x580 mm")
func (d Dimensions) String() string {
	return fmt.Sprintf("%.0fx%.0fx%.0f mm", d.WidthMm, d.HeightMm, d.DepthMm)
}
