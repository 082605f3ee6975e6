package geo

import "fmt"

// BoundingBox is the plausibility filter for extracted coordinates. It is a
// rough national extent, not a legal border; anything outside is treated as
// an OCR misread rather than a far-away inspection site.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// DefaultBoundingBox covers the Indonesian archipelago.
func DefaultBoundingBox() BoundingBox {
	return BoundingBox{MinLat: -11, MaxLat: 6, MinLon: 95, MaxLon: 141}
}

// Contains reports whether the pair falls inside the box. Malformed input
// (NaN) compares false on every branch, so it simply returns false.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// Validate checks the box is well-formed.
func (b BoundingBox) Validate() error {
	if b.MinLat >= b.MaxLat {
		return fmt.Errorf("invalid latitude range: [%v, %v]", b.MinLat, b.MaxLat)
	}
	if b.MinLon >= b.MaxLon {
		return fmt.Errorf("invalid longitude range: [%v, %v]", b.MinLon, b.MaxLon)
	}
	if b.MinLat < -90 || b.MaxLat > 90 {
		return fmt.Errorf("latitude range [%v, %v] outside [-90, 90]", b.MinLat, b.MaxLat)
	}
	if b.MinLon < -180 || b.MaxLon > 180 {
		return fmt.Errorf("longitude range [%v, %v] outside [-180, 180]", b.MinLon, b.MaxLon)
	}
	return nil
}
