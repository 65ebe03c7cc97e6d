// Package merchant classifies noisy merchant name strings into canonical
// Turkish retail chains using a static priority-weighted pattern table.
package merchant

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fisworks/fisparse/constants"
)

const brandScanLines = 5

var (
	reNumericCode = regexp.MustCompile(`^[\d\s\W]+$`)
	reAddressLine = regexp.MustCompile(`(?i)\b(?:MAH\.?|MAHALLES[İIiı]|CAD\.?|CADDES[İIiı]|SOK\.?|SOKAK|BULV(?:AR)?|APT\.?|NO\s*[:.]\s*\d|[İIiı]L[ÇC]E|TEL)\b`)
	reNameNoise   = regexp.MustCompile(`[^\p{L}\p{N}\s.\-]`)
	reSpaces      = regexp.MustCompile(`\s+`)
)

// legalSuffixes are entity-type words stripped by CleanName, compared in
// folded form with trailing dots removed.
var legalSuffixes = map[string]struct{}{
	"ltd":  {},
	"şti":  {},
	"sti":  {},
	"a.ş":  {},
	"aş":   {},
	"as":   {},
	"san":  {},
	"tic":  {},
	"paz":  {},
	"ith":  {},
	"ihr":  {},
	"ve":   {},
	"inc":  {},
	"co":   {},
	"corp": {},
}

// NormalizeToChain maps a raw merchant string to its canonical chain name
// and reports whether a chain pattern matched. Empty input yields "Unknown";
// an unmatched merchant is passed through trimmed but otherwise verbatim.
func NormalizeToChain(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return string(constants.Unknown), false
	}
	folded := fold(trimmed)

	bestScore := 0
	var bestChain constants.Chain
	for _, m := range mappings {
		for _, p := range m.Patterns {
			if !strings.Contains(folded, p) {
				continue
			}
			if score := len([]rune(p)) * m.Priority; score > bestScore {
				bestScore = score
				bestChain = m.Chain
			}
		}
	}
	if bestScore == 0 {
		return trimmed, false
	}
	return string(bestChain), true
}

// ExtractBrand scans the first few non-empty lines of the receipt for the
// merchant brand, skipping numeric codes and address fragments. A line
// qualifies when it classifies to a known chain or is a substantial
// alphabetic string.
func ExtractBrand(fullText string) (string, bool) {
	seen := 0
	for _, line := range strings.Split(fullText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > brandScanLines {
			break
		}
		if reNumericCode.MatchString(line) || reAddressLine.MatchString(line) {
			continue
		}
		if qualifiesAsBrand(line) {
			return line, true
		}
	}
	return "", false
}

func qualifiesAsBrand(line string) bool {
	if _, matched := NormalizeToChain(line); matched {
		return true
	}
	letters := 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 4 && letters*2 > len([]rune(line))
}

// CleanName collapses whitespace, strips characters outside the Turkish
// word/space/hyphen/dot set and removes legal-entity suffixes as whole
// words. Cosmetic only; classification runs on the raw string.
func CleanName(name string) string {
	name = reNameNoise.ReplaceAllString(name, " ")
	name = reSpaces.ReplaceAllString(strings.TrimSpace(name), " ")

	words := strings.Fields(name)
	kept := words[:0]
	for _, w := range words {
		key := strings.TrimRight(fold(w), ".")
		if _, drop := legalSuffixes[key]; drop {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// fold lowercases with the Turkish i family collapsed onto ASCII i and
// combining dots removed, so OCR variants of the same brand compare equal.
func fold(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case 'ı':
			return 'i'
		case '̇':
			return -1
		}
		return r
	}, s)
}
