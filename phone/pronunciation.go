package phone

import (
	"fmt"
	"strings"
	"unicode"

	ipa "github.com/ieee0824/ipa-go"
)

type parseConfig struct {
	keepStress  bool
	keepAccents *bool // defaults from keepStress when unset
	dropTones   bool
	keepTies    bool
}

// Option adjusts how a phonetic string is parsed.
type Option func(*parseConfig)

// KeepStress controls whether stress marks are kept and attached to the
// following phone. Default true.
func KeepStress(keep bool) Option {
	return func(c *parseConfig) { c.keepStress = keep }
}

// KeepAccents controls whether accent marks are kept. Defaults to the
// KeepStress setting.
func KeepAccents(keep bool) Option {
	return func(c *parseConfig) { c.keepAccents = &keep }
}

// DropTones discards tone codepoints entirely. Default false.
func DropTones(drop bool) Option {
	return func(c *parseConfig) { c.dropTones = drop }
}

// KeepTies controls whether tie bars join two base letters into one phone.
// When false the tie codepoint is discarded and no join occurs. Default
// true.
func KeepTies(keep bool) Option {
	return func(c *parseConfig) { c.keepTies = keep }
}

// Pronunciation is an ordered sequence of phones, breaks, and intonation
// markers. Concatenating the canonical text of every element reproduces
// the full canonical transcription.
type Pronunciation struct {
	Elements []Element
}

// Parse splits a phonetic string into an ordered Pronunciation.
func Parse(s string, opts ...Option) (Pronunciation, error) {
	var pron Pronunciation
	for _, cluster := range Clusters(s, opts...) {
		elem, err := classify(cluster)
		if err != nil {
			return Pronunciation{}, err
		}
		pron.Elements = append(pron.Elements, elem)
	}
	return pron, nil
}

// Clusters walks the decomposed codepoints of s once, left to right,
// grouping them into cluster strings: one per phone, break, or intonation
// marker.
func Clusters(s string, opts ...Option) []string {
	cfg := parseConfig{keepStress: true, keepTies: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	keepAccents := cfg.keepStress
	if cfg.keepAccents != nil {
		keepAccents = *cfg.keepAccents
	}

	var out []string
	var cluster []rune
	var pending []rune // buffered stress/accents, prefixed onto the next cluster
	skipNext := false  // after a tie: next base letter joins the current cluster
	inTone := false

	closeCluster := func() {
		if len(cluster) > 0 {
			out = append(out, string(cluster))
			cluster = nil
		}
		inTone = false
		skipNext = false
	}

	for _, c := range ipa.NFD(s) {
		switch {
		case unicode.IsSpace(c) || c == ipa.SyllableBreak || ipa.IsBracket(c):
			// Dropped entirely.

		case ipa.IsBreak(c) || ipa.IsIntonation(c):
			closeCluster()
			out = append(out, string(c))

		case ipa.IsStress(c):
			if cfg.keepStress {
				closeCluster()
				pending = append(pending, c)
			}

		case inTone && (c == ipa.GlottalizedTone || c == ipa.ShortTone):
			if !cfg.dropTones {
				cluster = append(cluster, c)
			}

		case ipa.IsAccent(c):
			if keepAccents {
				closeCluster()
				pending = append(pending, c)
			}

		case ipa.IsTone(c):
			if !cfg.dropTones {
				cluster = append(cluster, c)
				inTone = true
			}

		case ipa.IsLong(c):
			cluster = append(cluster, c)

		case ipa.IsTie(c):
			if cfg.keepTies {
				cluster = append(cluster, c)
				skipNext = true
			}

		case ipa.IsCombining(c):
			cluster = append(cluster, c)

		default:
			if skipNext {
				cluster = append(cluster, c)
				skipNext = false
				continue
			}
			closeCluster()
			cluster = append(pending, c)
			pending = nil
		}
	}
	closeCluster()
	if len(pending) > 0 {
		// A trailing marker with no base letter surfaces as its own
		// cluster so phone construction can reject it.
		out = append(out, string(pending))
	}

	return out
}

func classify(cluster string) (Element, error) {
	if len([]rune(cluster)) == 1 {
		switch []rune(cluster)[0] {
		case ipa.MinorBreak:
			return Break{Type: ipa.BreakMinor}, nil
		case ipa.MajorBreak:
			return Break{Type: ipa.BreakMajor}, nil
		case ipa.WordBreak:
			return Break{Type: ipa.BreakWord}, nil
		case ipa.RisingIntonation:
			return Intonation{Rising: true}, nil
		case ipa.FallingIntonation:
			return Intonation{Rising: false}, nil
		}
	}

	p, err := FromString(cluster)
	if err != nil {
		return nil, fmt.Errorf("cluster %q: %w", cluster, err)
	}
	return p, nil
}

// Text concatenates the canonical text of every element in order.
func (p Pronunciation) Text() string {
	var sb strings.Builder
	for _, elem := range p.Elements {
		sb.WriteString(elem.Text())
	}
	return sb.String()
}

func (p Pronunciation) String() string { return p.Text() }

// Phones returns the sub-sequence of phones only.
func (p Pronunciation) Phones() []Phone {
	var phones []Phone
	for _, elem := range p.Elements {
		if ph, ok := elem.(Phone); ok {
			phones = append(phones, ph)
		}
	}
	return phones
}

// Breaks returns the sub-sequence of breaks only.
func (p Pronunciation) Breaks() []Break {
	var breaks []Break
	for _, elem := range p.Elements {
		if b, ok := elem.(Break); ok {
			breaks = append(breaks, b)
		}
	}
	return breaks
}

// Intonations returns the sub-sequence of intonation markers only.
func (p Pronunciation) Intonations() []Intonation {
	var intonations []Intonation
	for _, elem := range p.Elements {
		if i, ok := elem.(Intonation); ok {
			intonations = append(intonations, i)
		}
	}
	return intonations
}
