package phone

import ipa "github.com/ieee0824/ipa-go"

// Element is one unit of a pronunciation: a Phone, a Break, or an
// Intonation marker.
type Element interface {
	Text() string
	isElement()
}

// Break is a minor, major, or word boundary.
type Break struct {
	Type ipa.BreakType
}

// Text returns the break's fixed symbol.
func (b Break) Text() string {
	switch b.Type {
	case ipa.BreakMinor:
		return string(ipa.MinorBreak)
	case ipa.BreakMajor:
		return string(ipa.MajorBreak)
	case ipa.BreakWord:
		return string(ipa.WordBreak)
	}
	return ""
}

func (b Break) String() string { return b.Text() }

func (Break) isElement() {}

// Intonation marks a rising or falling pitch contour.
type Intonation struct {
	Rising bool
}

// Text returns the intonation's fixed symbol.
func (i Intonation) Text() string {
	if i.Rising {
		return string(ipa.RisingIntonation)
	}
	return string(ipa.FallingIntonation)
}

func (i Intonation) String() string { return i.Text() }

func (Intonation) isElement() {}
