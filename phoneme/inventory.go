package phoneme

import (
	"slices"
	"strings"
	"unicode/utf8"

	ipa "github.com/ieee0824/ipa-go"
	"github.com/ieee0824/ipa-go/phone"
)

// Inventory holds one language's ordered phoneme list plus its allophone
// map. Derived state (the sorted cluster sequences and the substitution
// table) is rebuilt by Update, which must be called after any mutation of
// Phonemes or IPAMap and before the next Split.
type Inventory struct {
	Language string
	Phonemes []Phoneme

	// IPAMap maps an allophone surface form to the canonical text of the
	// phoneme it should be read as.
	IPAMap map[string]string

	// RawPatterns marks IPAMap keys that are matched directly, without
	// the longer-phoneme suffix guard.
	RawPatterns map[string]bool

	// NativeToIPA and IPAFromNative map between this language's own
	// notation and IPA, when a sibling notation file is present.
	NativeToIPA map[string]string
	IPAToNative map[string]string

	// Derived by Update.
	sequences []clusterSequence
	subst     []substitution
}

// clusterSequence is one phoneme's text split into phone clusters, used
// for multi-cluster (dipthong, tied) matching.
type clusterSequence struct {
	clusters []string
	phoneme  int // index into Phonemes
}

// substitution is one compiled allophone replacement. The replacement is
// suppressed when the input continues with any of the guard suffixes:
// those positions are the prefix of a longer cataloged phoneme.
type substitution struct {
	pattern     string
	replacement string
	suffixes    []string
}

// NewInventory builds an inventory from an ordered phoneme list and an
// optional allophone map, with derived state already built.
func NewInventory(language string, phonemes []Phoneme, ipaMap map[string]string) *Inventory {
	inv := &Inventory{
		Language: language,
		Phonemes: phonemes,
		IPAMap:   ipaMap,
	}
	inv.Update()
	return inv
}

// Update rebuilds the derived matching state. It must be called after
// mutating Phonemes or IPAMap.
func (inv *Inventory) Update() {
	inv.sequences = inv.sequences[:0]
	for i, ph := range inv.Phonemes {
		clusters := phone.Clusters(ph.TextCompare())
		for j, cl := range clusters {
			clusters[j] = canonicalCluster(cl)
		}
		inv.sequences = append(inv.sequences, clusterSequence{
			clusters: clusters,
			phoneme:  i,
		})
	}
	// Longest sequence first; file order among equals.
	slices.SortStableFunc(inv.sequences, func(a, b clusterSequence) int {
		return len(b.clusters) - len(a.clusters)
	})

	inv.subst = inv.subst[:0]
	for pattern, replacement := range inv.IPAMap {
		pattern = ipa.NFC(pattern)
		replacement = ipa.NFC(replacement)
		if pattern == replacement {
			continue
		}

		sub := substitution{pattern: pattern, replacement: replacement}
		if !inv.RawPatterns[pattern] {
			for _, ph := range inv.Phonemes {
				text := ipa.NFC(ph.Text())
				if len(text) > len(pattern) && strings.HasPrefix(text, pattern) {
					sub.suffixes = append(sub.suffixes, text[len(pattern):])
				}
			}
		}
		inv.subst = append(inv.subst, sub)
	}
	// Longest pattern first, then lexicographic for determinism.
	slices.SortFunc(inv.subst, func(a, b substitution) int {
		if d := len(b.pattern) - len(a.pattern); d != 0 {
			return d
		}
		return strings.Compare(a.pattern, b.pattern)
	})
}

// ApplyIPAMap rewrites every allophone occurrence in s to its canonical
// phoneme text, longest pattern first. A pattern is skipped at positions
// where the input continues into a longer cataloged phoneme that merely
// starts with the pattern.
func (inv *Inventory) ApplyIPAMap(s string) string {
	if len(inv.subst) == 0 {
		return s
	}
	s = ipa.NFC(s)

	var sb strings.Builder
	for i := 0; i < len(s); {
		replaced := false
		for _, sub := range inv.subst {
			if !strings.HasPrefix(s[i:], sub.pattern) {
				continue
			}
			if continuesLonger(s[i+len(sub.pattern):], sub.suffixes) {
				continue
			}
			sb.WriteString(sub.replacement)
			i += len(sub.pattern)
			replaced = true
			break
		}
		if !replaced {
			_, size := utf8.DecodeRuneInString(s[i:])
			sb.WriteString(s[i : i+size])
			i += size
		}
	}
	return sb.String()
}

// canonicalCluster normalizes a raw cluster string through the phone
// serializer so both sides of a match comparison use one canonical form.
func canonicalCluster(cluster string) string {
	p, err := phone.FromString(cluster)
	if err != nil {
		return ipa.NFC(cluster)
	}
	return p.Text()
}

func continuesLonger(rest string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasPrefix(rest, suffix) {
			return true
		}
	}
	return false
}

// Index returns the position of the phoneme whose compare-text equals
// text, or -1.
func (inv *Inventory) Index(text string) int {
	text = ipa.NFC(text)
	for i, ph := range inv.Phonemes {
		if ph.TextCompare() == text {
			return i
		}
	}
	return -1
}

// Contains reports whether the inventory holds a phoneme with the given
// compare-text.
func (inv *Inventory) Contains(text string) bool {
	return inv.Index(text) >= 0
}

// Get returns the phoneme with the given compare-text.
func (inv *Inventory) Get(text string) (Phoneme, bool) {
	if i := inv.Index(text); i >= 0 {
		return inv.Phonemes[i], true
	}
	return Phoneme{}, false
}
