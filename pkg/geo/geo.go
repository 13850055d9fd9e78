// Package geo provides great-circle distance math and the circular
// admission check used for location-gated check-ins. It is pure
// computation: no I/O, no state.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusMeters is the mean Earth radius of the spherical
// approximation used by the haversine formula.
const EarthRadiusMeters = 6371000.0

var ErrInvalidCoordinates = errors.New("geo: coordinates out of range")

// Point is a WGS84 coordinate pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point is within lat [-90,90] and lng [-180,180].
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Fence is a circular admission region around a center point.
type Fence struct {
	Center       Point
	RadiusMeters float64
}

// Evaluation is the result of checking a point against a Fence.
type Evaluation struct {
	DistanceMeters float64 `json:"distance_meters"`
	AllowedMeters  float64 `json:"allowed_radius"`
	WithinRadius   bool    `json:"is_within_radius"`
	ExcessMeters   float64 `json:"excess_meters"`
}

// DistanceMeters computes the haversine distance between two points.
func DistanceMeters(a, b Point) float64 {
	latA := degToRad(a.Lat)
	latB := degToRad(b.Lat)
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// Evaluate checks a point against a fence. The boundary is inclusive: a
// distance exactly equal to the radius is within.
func Evaluate(p Point, fence Fence) (Evaluation, error) {
	if !p.Valid() || !fence.Center.Valid() {
		return Evaluation{}, ErrInvalidCoordinates
	}

	d := DistanceMeters(p, fence.Center)
	within := d <= fence.RadiusMeters

	excess := 0.0
	if !within {
		excess = d - fence.RadiusMeters
	}

	return Evaluation{
		DistanceMeters: round2(d),
		AllowedMeters:  fence.RadiusMeters,
		WithinRadius:   within,
		ExcessMeters:   round2(excess),
	}, nil
}

// FormatDistance renders a distance for user-facing messages: whole meters
// below 1 km, otherwise kilometers to two decimals.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
