// Package service contains the domain services that make up the parametric
// pricing and spatial placement engine. Every service is a pure function of
// its inputs plus an externally supplied read-only settings snapshot: no I/O,
// no locks, no shared mutable state. Failures are values, never panics.
package service

import (
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// ResolvedDimensions is the output of dimension resolution: schema-valid
// working dimensions plus the reference volume they imply.
type ResolvedDimensions struct {
	// Dimensions are the clamped working dimensions for this call.
	Dimensions valueobject.Dimensions

	// ReferenceVolumeMm3 is width × depth × height in cubic millimeters.
	ReferenceVolumeMm3 float64
}

// DimensionResolver produces clamped, schema-valid working dimensions from a
// product's declared ranges and whatever the caller supplied. Out-of-range
// input is never an error: clamping is silent and deterministic so a pricing
// call can always proceed.
type DimensionResolver struct{}

// NewDimensionResolver creates a new DimensionResolver.
func NewDimensionResolver() *DimensionResolver {
	return &DimensionResolver{}
}

// Resolve computes working dimensions for one pricing call.
//
// Per axis: a supplied value inside [min, max] wins; otherwise the schema
// default is used; the result is clamped as a last resort. A zero supplied
// value counts as absent.
//
// Parameters:
//   - schema: the product's declared dimension ranges
//   - requested: caller-supplied initial values (zero axes mean absent)
//
// Returns:
//   - ResolvedDimensions: working dimensions with min <= v <= max on every axis
func (r *DimensionResolver) Resolve(
	schema valueobject.DimensionSchema,
	requested valueobject.Dimensions,
) ResolvedDimensions {
	dims := valueobject.Dimensions{
		WidthMm:  resolveAxis(schema.Width, requested.WidthMm),
		HeightMm: resolveAxis(schema.Height, requested.HeightMm),
		DepthMm:  resolveAxis(schema.Depth, requested.DepthMm),
	}
	return ResolvedDimensions{
		Dimensions:         dims,
		ReferenceVolumeMm3: dims.VolumeMm3(),
	}
}

// resolveAxis applies the supplied-default-clamp fallback chain to one axis.
func resolveAxis(axis valueobject.AxisRange, requested float64) float64 {
	if requested != 0 && axis.Contains(requested) {
		return requested
	}
	return axis.Clamp(axis.Default())
}
