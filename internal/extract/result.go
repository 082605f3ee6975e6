package extract

import "strconv"

// Result carries the extracted coordinate pair as decimal-degree strings.
// Empty strings mean extraction found nothing; that is a normal outcome,
// not an error.
type Result struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Empty reports whether no coordinates were recovered.
func (r Result) Empty() bool {
	return r.Latitude == "" && r.Longitude == ""
}

// FormatCoordinate renders a decimal-degree value the way it is written
// into report cells.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
