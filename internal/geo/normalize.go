package geo

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Glyphs that tesseract commonly substitutes in GPS overlays. The degree
// sign in particular comes back as "*", "o" or "0" adjacent to digits, and
// curly primes replace the ASCII minute/second marks.
var glyphReplacer = strings.NewReplacer(
	"*", "°",
	"º", "°",
	"˚", "°",
	"′", "'",
	"ʼ", "'",
	"`", "'",
	"″", "\"",
	"“", "\"",
	"”", "\"",
	"\\", "'",
	"/", "'",
)

// NormalizeText folds a raw OCR fragment into a canonical form the
// coordinate patterns can match: NFKC-normalized, common glyph confusions
// repaired, line breaks flattened and runs of whitespace collapsed.
func NormalizeText(s string) string {
	// Glyph repair runs before NFKC: compatibility folding turns the
	// ordinal and ring characters into plain letters, which would hide
	// them from the replacer.
	s = glyphReplacer.Replace(s)
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}

// JoinFragments merges recognized fragments into a single searchable line.
// Coordinates split across lines by the recognizer become adjacent again.
func JoinFragments(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if n := NormalizeText(f); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}
