package geo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates_DecimalPairs(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLat float64
		wantLon float64
	}{
		{
			name:    "comma delimiter",
			text:    "-6.876583, 107.576589",
			wantLat: -6.876583,
			wantLon: 107.576589,
		},
		{
			name:    "whitespace delimiter",
			text:    "-6.876583 107.576589",
			wantLat: -6.876583,
			wantLon: 107.576589,
		},
		{
			name:    "hemisphere letters instead of sign",
			text:    "6.876583 S 107.576589 E",
			wantLat: -6.876583,
			wantLon: 107.576589,
		},
		{
			name:    "comma decimal separators",
			text:    "-6,876583 107,576589",
			wantLat: -6.876583,
			wantLon: 107.576589,
		},
		{
			name:    "surrounded by OCR noise",
			text:    "alt 712m ~ -6.876583,107.576589 # 13 Jun 2025",
			wantLat: -6.876583,
			wantLon: 107.576589,
		},
		{
			name:    "split across lines",
			text:    "-6.876583,\n107.576589",
			wantLat: -6.876583,
			wantLon: 107.576589,
		},
		{
			name:    "degree signs on decimals",
			text:    "-6.876583° , 107.576589°",
			wantLat: -6.876583,
			wantLon: 107.576589,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseCoordinates(tt.text)
			require.True(t, ok)
			assert.InDelta(t, tt.wantLat, c.Lat, 1e-9)
			assert.InDelta(t, tt.wantLon, c.Lon, 1e-9)
		})
	}
}

func TestParseCoordinates_DMSPairs(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLat float64
		wantLon float64
	}{
		{
			name:    "standard overlay format",
			text:    `6°52'35.698"S 107°34'37.321"E`,
			wantLat: -DMSToDecimal(6, 52, 35.698, 'N'),
			wantLon: DMSToDecimal(107, 34, 37.321, 'E'),
		},
		{
			name:    "comma decimal seconds",
			text:    `6°52'35,698"S 107°34'37,321"E`,
			wantLat: -DMSToDecimal(6, 52, 35.698, 'N'),
			wantLon: DMSToDecimal(107, 34, 37.321, 'E'),
		},
		{
			name:    "no space between halves",
			text:    `6°52'35.698"S107°34'37.321"E`,
			wantLat: -DMSToDecimal(6, 52, 35.698, 'N'),
			wantLon: DMSToDecimal(107, 34, 37.321, 'E'),
		},
		{
			name:    "asterisk degree sign and curly primes",
			text:    `6*52′35.698″S 107*34′37.321″E`,
			wantLat: -DMSToDecimal(6, 52, 35.698, 'N'),
			wantLon: DMSToDecimal(107, 34, 37.321, 'E'),
		},
		{
			name:    "Z misread for S and E",
			text:    `6°52'35.698"Z 107°34'37.321"Z`,
			wantLat: -DMSToDecimal(6, 52, 35.698, 'N'),
			wantLon: DMSToDecimal(107, 34, 37.321, 'E'),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseCoordinates(tt.text)
			require.True(t, ok)
			assert.InDelta(t, tt.wantLat, c.Lat, 1e-9)
			assert.InDelta(t, tt.wantLon, c.Lon, 1e-9)
		})
	}
}

func TestParseCoordinates_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "plain prose", text: "Jalan Raya Bandung kecamatan Cimahi"},
		{name: "timestamp only", text: "13 Jun 2025 12.59.06"},
		{name: "single number", text: "-6.876583"},
		{name: "integers without decimals", text: "6 107"},
		{name: "out of range pair", text: "196.876583, 907.576589"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseCoordinates(tt.text)
			assert.False(t, ok)
		})
	}
}

func TestParseCoordinates_FirstMatchWins(t *testing.T) {
	c, ok := ParseCoordinates("-6.876583, 107.576589 and also -7.123456, 110.654321")
	require.True(t, ok)
	assert.InDelta(t, -6.876583, c.Lat, 1e-9)
	assert.InDelta(t, 107.576589, c.Lon, 1e-9)
}

func TestParseFragments_JoinsAcrossFragments(t *testing.T) {
	c, ok := ParseFragments([]string{"-6.876583,", "107.576589"})
	require.True(t, ok)
	assert.InDelta(t, -6.876583, c.Lat, 1e-9)
	assert.InDelta(t, 107.576589, c.Lon, 1e-9)
}

// Clean in-box pairs rendered as text must survive the parse+validate
// round trip unchanged.
func TestParseAndValidate_RoundTrip(t *testing.T) {
	box := DefaultBoundingBox()
	pairs := []Candidate{
		{Lat: -6.876583, Lon: 107.576589},
		{Lat: -10.999999, Lon: 95.000001},
		{Lat: 5.999999, Lon: 140.999999},
		{Lat: 0.123456, Lon: 120.5},
		{Lat: -2.5, Lon: 99.999999},
	}

	for _, p := range pairs {
		text := fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lon)
		c, ok := ParseCoordinates(text)
		require.True(t, ok, "pair %v should parse", text)
		assert.InDelta(t, p.Lat, c.Lat, 1e-6)
		assert.InDelta(t, p.Lon, c.Lon, 1e-6)
		assert.True(t, box.Contains(c.Lat, c.Lon))
	}
}
