// Package phone parses phonetic strings into ordered phones, prosodic
// breaks, and intonation markers, and reconstructs canonical text from them.
package phone

import (
	"fmt"
	"strings"

	ipa "github.com/ieee0824/ipa-go"
)

// Diacritics holds the marks attached to one base letter.
type Diacritics struct {
	Nasal  bool
	Raised bool
	Other  []rune // opaque combining marks, in input order
}

// Phone is one pronounced unit as it literally appears in a transcription.
// It is immutable after construction.
type Phone struct {
	// Letters is the NFC base letter sequence. It may contain a tie bar
	// joining two base letters (affricates).
	Letters string
	Stress  ipa.Stress
	Accents []ipa.Accent
	IsLong  bool
	// Tone is the raw trailing tone codepoints, in input order.
	Tone string
	// Diacritics is indexed by base letter position. Ties do not count
	// as letters.
	Diacritics []Diacritics
}

// FromString parses a single phone cluster. It fails on an empty string
// and on a cluster with no base letter (e.g. a bare stress mark).
func FromString(s string) (Phone, error) {
	if s == "" {
		return Phone{}, fmt.Errorf("empty phone")
	}

	var p Phone
	var letters []rune
	letterIdx := -1
	inTone := false

	for _, c := range ipa.NFD(s) {
		switch {
		case ipa.IsStress(c):
			if c == ipa.PrimaryStress {
				p.Stress = ipa.StressPrimary
			} else {
				p.Stress = ipa.StressSecondary
			}
		case inTone && (c == ipa.GlottalizedTone || c == ipa.ShortTone):
			p.Tone += string(c)
		case ipa.IsAccent(c):
			if c == ipa.AcuteAccent {
				p.Accents = append(p.Accents, ipa.AccentAcute)
			} else {
				p.Accents = append(p.Accents, ipa.AccentGrave)
			}
		case ipa.IsTone(c):
			p.Tone += string(c)
			inTone = true
		case ipa.IsLong(c):
			p.IsLong = true
		case ipa.IsNasal(c):
			if letterIdx < 0 {
				return Phone{}, fmt.Errorf("diacritic before base letter in %q", s)
			}
			p.Diacritics[letterIdx].Nasal = true
		case ipa.IsRaised(c):
			if letterIdx < 0 {
				return Phone{}, fmt.Errorf("diacritic before base letter in %q", s)
			}
			p.Diacritics[letterIdx].Raised = true
		case ipa.IsBracket(c) || c == ipa.SyllableBreak:
			// Ignored inside a cluster.
		case ipa.IsTie(c):
			letters = append(letters, c)
		case ipa.IsCombining(c):
			if letterIdx < 0 {
				return Phone{}, fmt.Errorf("diacritic before base letter in %q", s)
			}
			p.Diacritics[letterIdx].Other = append(p.Diacritics[letterIdx].Other, c)
		default:
			letters = append(letters, c)
			letterIdx++
			p.Diacritics = append(p.Diacritics, Diacritics{})
		}
	}

	if len(letters) == 0 {
		return Phone{}, fmt.Errorf("no base letters in %q", s)
	}
	p.Letters = ipa.NFC(string(letters))

	return p, nil
}

// Text serializes the phone in canonical order: accents, stress, each
// letter followed by its diacritics, tone, elongation. The result is
// NFC-normalized, and parsing it back yields an equal Phone.
func (p Phone) Text() string {
	var sb strings.Builder

	for _, a := range p.Accents {
		if a == ipa.AccentAcute {
			sb.WriteRune(ipa.AcuteAccent)
		} else {
			sb.WriteRune(ipa.GraveAccent)
		}
	}
	switch p.Stress {
	case ipa.StressPrimary:
		sb.WriteRune(ipa.PrimaryStress)
	case ipa.StressSecondary:
		sb.WriteRune(ipa.SecondaryStress)
	}

	idx := -1
	for _, r := range p.Letters {
		if ipa.IsCombining(r) {
			sb.WriteRune(r)
			continue
		}
		idx++
		sb.WriteRune(r)
		if idx >= len(p.Diacritics) {
			continue
		}
		d := p.Diacritics[idx]
		if d.Nasal {
			sb.WriteRune(ipa.NasalMark)
		}
		if d.Raised {
			sb.WriteRune(ipa.RaisedMark)
		}
		for _, o := range d.Other {
			sb.WriteRune(o)
		}
	}

	sb.WriteString(p.Tone)
	if p.IsLong {
		sb.WriteRune(ipa.LongMark)
	}

	return ipa.NFC(sb.String())
}

// String implements fmt.Stringer.
func (p Phone) String() string { return p.Text() }

// Nasalated reports whether any base letter carries the nasalization mark.
func (p Phone) Nasalated() bool {
	for _, d := range p.Diacritics {
		if d.Nasal {
			return true
		}
	}
	return false
}

// Raised reports whether any base letter carries the raised mark.
func (p Phone) Raised() bool {
	for _, d := range p.Diacritics {
		if d.Raised {
			return true
		}
	}
	return false
}

// Suprasegmentals returns the display set of marks that apply to the phone
// as a whole: stress, accents, and elongation.
func (p Phone) Suprasegmentals() map[rune]bool {
	marks := make(map[rune]bool)

	switch p.Stress {
	case ipa.StressPrimary:
		marks[ipa.PrimaryStress] = true
	case ipa.StressSecondary:
		marks[ipa.SecondaryStress] = true
	}
	for _, a := range p.Accents {
		if a == ipa.AccentAcute {
			marks[ipa.AcuteAccent] = true
		} else {
			marks[ipa.GraveAccent] = true
		}
	}
	if p.IsLong {
		marks[ipa.LongMark] = true
	}

	return marks
}

func (Phone) isElement() {}
