// Package ipa classifies International Phonetic Alphabet codepoints and
// defines the shared phonetic enumerations used by the rest of the module.
package ipa

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// IPA suprasegmental and diacritic codepoints.
const (
	PrimaryStress   rune = '\u02C8' // ˈ
	SecondaryStress rune = '\u02CC' // ˌ

	AcuteAccent rune = '\''
	GraveAccent rune = '\u00B2' // ²

	LongMark       rune = '\u02D0' // ː
	HalfLongMark   rune = '\u02D1' // eˑ
	ExtraShortMark rune = '\u0306' // ə̆
	NasalMark      rune = '\u0303' // ẽ
	RaisedMark     rune = '\u031D' // r̝
	TieAbove       rune = '\u0361' // ͡
	TieBelow       rune = '\u035C' // ͜

	SyllabicMark    rune = '\u0329'
	NonSyllabicMark rune = '\u032F'

	SyllableBreak rune = '.'
	MinorBreak    rune = '|'
	MajorBreak    rune = '\u2016' // ‖
	WordBreak     rune = '#'

	RisingIntonation  rune = '\u2197' // ↗
	FallingIntonation rune = '\u2198' // ↘

	GlottalizedTone rune = '\u02C0' // ˀ
	ShortTone       rune = '\u0294' // ʔ
)

// IsStress reports whether r is a primary or secondary stress mark.
func IsStress(r rune) bool {
	return r == PrimaryStress || r == SecondaryStress
}

// IsAccent reports whether r is an acute or grave accent mark.
func IsAccent(r rune) bool {
	return r == AcuteAccent || r == GraveAccent
}

// IsLong reports whether r is the elongation mark.
func IsLong(r rune) bool { return r == LongMark }

// IsNasal reports whether r is the nasalization diacritic.
func IsNasal(r rune) bool { return r == NasalMark }

// IsRaised reports whether r is the raised diacritic.
func IsRaised(r rune) bool { return r == RaisedMark }

// IsTie reports whether r is an above or below tie bar.
func IsTie(r rune) bool {
	return r == TieAbove || r == TieBelow
}

// IsBracket reports whether r is a phonetic, phonemic, prosodic, or
// optional bracket symbol.
func IsBracket(r rune) bool {
	switch r {
	case '[', ']', '/', '{', '}', '(', ')':
		return true
	}
	return false
}

// IsBreak reports whether r is a syllable, minor, major, or word break.
func IsBreak(r rune) bool {
	switch r {
	case SyllableBreak, MinorBreak, MajorBreak, WordBreak:
		return true
	}
	return false
}

// IsIntonation reports whether r is a rising or falling intonation mark.
func IsIntonation(r rune) bool {
	return r == RisingIntonation || r == FallingIntonation
}

// IsTone reports whether r is a tone number or tone bar.
func IsTone(r rune) bool {
	switch r {
	case '\u00B9', '\u00B2', '\u00B3': // ¹ ² ³
		return true
	case '\u2074', '\u2075', '\u2076', '\u2077', '\u2078', '\u2079': // ⁴-⁹
		return true
	case '\u02E5', '\u02E6', '\u02E7', '\u02E8', '\u02E9': // ˥ ˦ ˧ ˨ ˩
		return true
	}
	return false
}

// IsCombining reports whether r is a Unicode combining mark.
func IsCombining(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me)
}

// NFC returns s in Unicode canonical composed form.
func NFC(s string) string { return norm.NFC.String(s) }

// NFD returns s in Unicode canonical decomposed form.
func NFD(s string) string { return norm.NFD.String(s) }

// Graphemes splits s into graphemes: each base codepoint together with its
// combining marks, individually NFC-normalized.
func Graphemes(s string) []string {
	var graphemes []string
	var g strings.Builder

	for _, r := range NFD(s) {
		if IsCombining(r) || g.Len() == 0 {
			g.WriteRune(r)
			continue
		}
		graphemes = append(graphemes, NFC(g.String()))
		g.Reset()
		g.WriteRune(r)
	}
	if g.Len() > 0 {
		graphemes = append(graphemes, NFC(g.String()))
	}
	return graphemes
}

// WithoutStress returns s with stress marks removed. When dropAccents is
// true, acute/grave accent marks are removed as well.
func WithoutStress(s string, dropAccents bool) string {
	return strings.Map(func(r rune) rune {
		if IsStress(r) || (dropAccents && IsAccent(r)) {
			return -1
		}
		return r
	}, s)
}

// Stress is the stress applied to a phone.
type Stress string

const (
	StressNone      Stress = ""
	StressPrimary   Stress = "primary"
	StressSecondary Stress = "secondary"
)

// Accent is an accent mark applied to a phone.
type Accent string

const (
	AccentNone  Accent = ""
	AccentAcute Accent = "acute" // '
	AccentGrave Accent = "grave" // ²
)

// BreakType is the kind of a prosodic break.
type BreakType string

const (
	BreakMinor BreakType = "minor" // |
	BreakMajor BreakType = "major" // ‖
	BreakWord  BreakType = "word"  // #
)

// Length is the relative duration of a phoneme.
type Length string

const (
	LengthShort  Length = "short"
	LengthNormal Length = "normal"
	LengthLong   Length = "long"
)

// langAliases maps shorthand language codes to the codes used by the
// bundled data files.
var langAliases = map[string]string{
	"en":    "en-us",
	"en-gb": "en-us",
	"de":    "de-de",
	"fr":    "fr-fr",
	"pt-br": "pt",
	"vi":    "vi-n",
	"vi-c":  "vi-n",
	"vi-s":  "vi-n",
}

// ResolveLanguage resolves a language code against known aliases. A
// trailing "/set" suffix is preserved (e.g. "en/espeak" -> "en-us/espeak").
func ResolveLanguage(lang string) string {
	if base, rest, ok := strings.Cut(lang, "/"); ok {
		if alias, found := langAliases[base]; found {
			return alias + "/" + rest
		}
		return lang
	}
	if alias, found := langAliases[lang]; found {
		return alias
	}
	return lang
}
