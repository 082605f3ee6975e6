package geo

import (
	"fmt"
	"math"
)

// DMSToDecimal converts a degree/minute/second triple plus hemisphere letter
// into signed decimal degrees. South and west are negative.
func DMSToDecimal(degrees, minutes int, seconds float64, hemisphere byte) float64 {
	dec := float64(degrees) + float64(minutes)/60 + seconds/3600
	switch hemisphere {
	case 'S', 's', 'W', 'w':
		dec = -dec
	}
	return dec
}

// DecimalToDMS renders decimal degrees in the DMS style the paper forms
// carry, e.g. 6°52'35.698"S.
func DecimalToDMS(dec float64, isLatitude bool) string {
	neg := dec < 0
	dec = math.Abs(dec)

	degrees := int(dec)
	minutesFloat := (dec - float64(degrees)) * 60
	minutes := int(minutesFloat)
	seconds := (minutesFloat - float64(minutes)) * 60

	var hemisphere string
	if isLatitude {
		hemisphere = "N"
		if neg {
			hemisphere = "S"
		}
	} else {
		hemisphere = "E"
		if neg {
			hemisphere = "W"
		}
	}
	return fmt.Sprintf("%d°%d'%.3f\"%s", degrees, minutes, seconds, hemisphere)
}
