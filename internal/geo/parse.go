package geo

import (
	"regexp"
	"strconv"
	"strings"
)

// Candidate is one latitude/longitude pair recovered from recognized text.
// Values are decimal degrees; syntactic plausibility (|lat| <= 90,
// |lon| <= 180) is guaranteed, geographic plausibility is not.
type Candidate struct {
	Lat float64
	Lon float64
}

var (
	// Signed decimal-degree pair, dot decimals, separated by comma,
	// semicolon or whitespace. Hemisphere letters are optional and win
	// over the sign when present.
	decimalDotPattern = regexp.MustCompile(
		`([+-]?\d{1,3}\.\d{3,8})\s*°?\s*([NSns])?[\s,;]+([+-]?\d{1,3}\.\d{3,8})\s*°?\s*([EWew])?`)

	// The same pair with comma decimal separators; the delimiter must
	// then be whitespace or a semicolon.
	decimalCommaPattern = regexp.MustCompile(
		`([+-]?\d{1,3},\d{3,8})\s*°?\s*([NSns])?[\s;]+([+-]?\d{1,3},\d{3,8})\s*°?\s*([EWew])?`)

	// Degree/minute/second pair as printed on the photo overlays,
	// e.g. 6°52'35.698"S 107°34'37.321"E. Tesseract reads "o" for the
	// degree sign and "Z" for "S" often enough that both are accepted.
	dmsPattern = regexp.MustCompile(
		`(\d{1,3})[°oO]\s*(\d{1,2})'\s*(\d{1,2}(?:[.,]\d+)?)"?\s*([NSZnsz])[\s,;]*(\d{1,3})[°oO]\s*(\d{1,2})'\s*(\d{1,2}(?:[.,]\d+)?)"?\s*([EWZewz])`)
)

// ParseCoordinates scans recognized text for the first plausible
// latitude/longitude pair. It returns at most one candidate per call;
// a false second return means nothing in the text looked like a pair.
func ParseCoordinates(text string) (Candidate, bool) {
	line := NormalizeText(text)
	if line == "" {
		return Candidate{}, false
	}

	if c, ok := matchDecimal(line, decimalDotPattern, "."); ok {
		return c, true
	}
	if c, ok := matchDecimal(line, decimalCommaPattern, ","); ok {
		return c, true
	}
	if c, ok := matchDMS(line); ok {
		return c, true
	}
	return Candidate{}, false
}

// ParseFragments joins recognized fragments into one line and parses it.
func ParseFragments(fragments []string) (Candidate, bool) {
	return ParseCoordinates(JoinFragments(fragments))
}

func matchDecimal(line string, pattern *regexp.Regexp, decimalSep string) (Candidate, bool) {
	for _, m := range pattern.FindAllStringSubmatch(line, -1) {
		lat, err := parseDecimal(m[1], decimalSep)
		if err != nil {
			continue
		}
		lon, err := parseDecimal(m[3], decimalSep)
		if err != nil {
			continue
		}
		lat = applyHemisphere(lat, m[2])
		lon = applyHemisphere(lon, m[4])
		if plausible(lat, lon) {
			return Candidate{Lat: lat, Lon: lon}, true
		}
	}
	return Candidate{}, false
}

func matchDMS(line string) (Candidate, bool) {
	for _, m := range dmsPattern.FindAllStringSubmatch(line, -1) {
		lat, ok := dmsGroups(m[1], m[2], m[3], m[4], 'S')
		if !ok {
			continue
		}
		lon, ok := dmsGroups(m[5], m[6], m[7], m[8], 'E')
		if !ok {
			continue
		}
		if plausible(lat, lon) {
			return Candidate{Lat: lat, Lon: lon}, true
		}
	}
	return Candidate{}, false
}

func dmsGroups(deg, min, sec, hemi string, zSubstitute byte) (float64, bool) {
	d, err := strconv.Atoi(deg)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(min)
	if err != nil || m >= 60 {
		return 0, false
	}
	s, err := strconv.ParseFloat(strings.ReplaceAll(sec, ",", "."), 64)
	if err != nil || s >= 60 {
		return 0, false
	}
	h := hemi[0]
	if h == 'Z' || h == 'z' {
		// Common OCR confusion on the overlay font.
		h = zSubstitute
	}
	return DMSToDecimal(d, m, s, h), true
}

func parseDecimal(s, decimalSep string) (float64, error) {
	if decimalSep != "." {
		s = strings.ReplaceAll(s, decimalSep, ".")
	}
	return strconv.ParseFloat(s, 64)
}

func applyHemisphere(v float64, hemi string) float64 {
	if hemi == "" {
		return v
	}
	switch hemi[0] {
	case 'S', 's', 'W', 'w':
		if v > 0 {
			return -v
		}
	}
	return v
}

func plausible(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
