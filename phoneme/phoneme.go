// Package phoneme models language-level sound units: phones categorized
// against the symbol catalog, language inventories, and the greedy
// segmentation of a phonetic string into inventory phonemes.
package phoneme

import (
	"strings"

	ipa "github.com/ieee0824/ipa-go"
	"github.com/ieee0824/ipa-go/catalog"
	"github.com/ieee0824/ipa-go/phone"
)

// Kind is the catalog category a phoneme resolved to.
type Kind int

const (
	KindUnknown Kind = iota
	KindVowel
	KindConsonant
	KindSchwa
	KindDipthong
)

func (k Kind) String() string {
	switch k {
	case KindVowel:
		return "vowel"
	case KindConsonant:
		return "consonant"
	case KindSchwa:
		return "schwa"
	case KindDipthong:
		return "dipthong"
	}
	return "unknown"
}

// Phoneme is a categorized sound unit. The category is resolved once at
// construction and never changes. Two phonemes are equal iff their
// canonical text is equal.
type Phoneme struct {
	Phone   phone.Phone
	Example string
	// Tones lists the tone markings permitted on this phoneme by its
	// language file.
	Tones []string

	Kind      Kind
	Vowel     catalog.Vowel     // set when Kind == KindVowel
	Consonant catalog.Consonant // set when Kind == KindConsonant
	Schwa     catalog.Schwa     // set when Kind == KindSchwa
	Dipthong  catalog.Dipthong  // set when Kind == KindDipthong

	// Unknown marks a phoneme that was not matched against any
	// inventory; Raw carries its unmodified text.
	Unknown bool
	Raw     string
}

// New parses text into a categorized phoneme.
func New(text string) (Phoneme, error) {
	p, err := phone.FromString(text)
	if err != nil {
		return Phoneme{}, err
	}

	ph := Phoneme{Phone: p}
	ph.resolve()
	return ph, nil
}

// NewUnknown builds an uncategorized phoneme that carries its raw text.
func NewUnknown(text string) Phoneme {
	return Phoneme{Unknown: true, Raw: ipa.NFC(text)}
}

func (p *Phoneme) resolve() {
	letters := p.Phone.Letters

	if v, ok := catalog.Vowels[letters]; ok {
		p.Kind = KindVowel
		p.Vowel = v
		return
	}
	if c, ok := catalog.Consonants[letters]; ok {
		p.Kind = KindConsonant
		p.Consonant = c
		return
	}
	if s, ok := catalog.Schwas[letters]; ok {
		p.Kind = KindSchwa
		p.Schwa = s
		return
	}

	// Two adjacent catalog vowels form a dipthong.
	bases := []rune(strings.Map(dropTies, letters))
	if len(bases) == 2 {
		v1, ok1 := catalog.Vowels[string(bases[0])]
		v2, ok2 := catalog.Vowels[string(bases[1])]
		if ok1 && ok2 {
			p.Kind = KindDipthong
			p.Dipthong = catalog.Dipthong{Vowel1: v1, Vowel2: v2}
		}
	}
}

func dropTies(r rune) rune {
	if ipa.IsTie(r) {
		return -1
	}
	return r
}

// Text returns the canonical text of the phoneme. An unknown phoneme
// returns its raw text unchanged.
func (p Phoneme) Text() string {
	if p.Unknown {
		return p.Raw
	}
	return p.Phone.Text()
}

func (p Phoneme) String() string { return p.Text() }

// TextCompare returns the canonical text without stress or tone. It is
// stable under repeated stress reassignment and is what inventories match
// against.
func (p Phoneme) TextCompare() string {
	if p.Unknown {
		return stripStressTone(p.Raw)
	}
	c := p.Phone
	c.Stress = ""
	c.Tone = ""
	return c.Text()
}

// WithStressTone returns a copy with the given stress and tone applied.
// Empty arguments leave the corresponding attribute unchanged.
func (p Phoneme) WithStressTone(stress ipa.Stress, tone string) Phoneme {
	if p.Unknown {
		return p
	}
	if stress != "" {
		p.Phone.Stress = stress
	}
	if tone != "" {
		p.Phone.Tone = tone
	}
	return p
}

func stripStressTone(s string) string {
	return strings.Map(func(r rune) rune {
		if ipa.IsStress(r) || ipa.IsTone(r) {
			return -1
		}
		return r
	}, s)
}
