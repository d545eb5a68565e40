// Package accent maps phonemes from one language's inventory onto the
// closest phonemes of another language.
package accent

import (
	"math"
	"slices"

	ipa "github.com/ieee0824/ipa-go"
	"github.com/ieee0824/ipa-go/phone"
	"github.com/ieee0824/ipa-go/phoneme"
)

// Perceptual equivalence classes checked before any distance computation.
var (
	rLike          = []string{"ɹ", "ʁ", "r", "ʀ", "ɻ"}
	schwaPreferred = []string{"ə", "ɐ"}
	gs             = []string{"ɡ", "g"}
	// Glottal/pharyngeal stops may be dropped outright when the target
	// language has no equivalent.
	droppable = []string{"ʔ", "ʡ"}
)

// GuessedPhonemes is the substitute for one source phoneme: the matched
// target phonemes (empty when the source is deliberately dropped) and a
// confidence distance, 0 meaning exact.
type GuessedPhonemes struct {
	Phonemes []phoneme.Phoneme
	Distance float64
}

// GuessPhonemes finds the best substitute in the target inventory for a
// phoneme that may not exist there. Rule order is deliberate: hard-coded
// equivalence classes, schwa preferences, exact and near-exact text
// matches, recursive multi-letter splitting, the precomputed
// nearest-neighbor table, and finally any target phoneme sharing the
// first letter.
func GuessPhonemes(from phoneme.Phoneme, to *phoneme.Inventory) (GuessedPhonemes, error) {
	text := from.TextCompare()

	if slices.Contains(gs, text) {
		for _, g := range gs {
			if ph, ok := to.Get(g); ok {
				return GuessedPhonemes{Phonemes: []phoneme.Phoneme{ph}}, nil
			}
		}
	}
	if slices.Contains(rLike, text) {
		for _, r := range rLike {
			if ph, ok := to.Get(r); ok {
				return GuessedPhonemes{Phonemes: []phoneme.Phoneme{ph}}, nil
			}
		}
	}
	if slices.Contains(droppable, text) {
		for _, d := range droppable {
			if ph, ok := to.Get(d); ok {
				return GuessedPhonemes{Phonemes: []phoneme.Phoneme{ph}}, nil
			}
		}
		// No glottal/pharyngeal stop in the target: drop the phoneme.
		return GuessedPhonemes{}, nil
	}

	// The symbol consulted against the nearest-neighbor table. A schwa
	// with no direct preference is treated as a plain mid-central vowel
	// from here on; the mutation is local to this call.
	tableSymbol := from.Phone.Letters

	if from.Kind == phoneme.KindSchwa {
		for _, s := range schwaPreferred {
			if ph, ok := to.Get(s); ok {
				return GuessedPhonemes{Phonemes: []phoneme.Phoneme{ph}}, nil
			}
		}
		if from.Schwa.RColoured {
			for _, r := range rLike {
				if ph, ok := to.Get(r); ok {
					return GuessedPhonemes{Phonemes: []phoneme.Phoneme{ph}}, nil
				}
			}
		}
		tableSymbol = "ə"
	}

	// Exact and same-letters matches over the whole target inventory,
	// keeping the minimum-distance candidate.
	var best *phoneme.Phoneme
	bestDist := math.Inf(1)
	for i := range to.Phonemes {
		toPhoneme := to.Phonemes[i]
		if toPhoneme.TextCompare() == text {
			return GuessedPhonemes{Phonemes: []phoneme.Phoneme{toPhoneme}}, nil
		}
		if from.Phone.Letters == toPhoneme.Phone.Letters {
			// Same letters, differing only in elongation or accents.
			diff := runeLen(toPhoneme.Text()) - runeLen(from.Text())
			dist := math.Abs(float64(diff)) / 10
			if dist < bestDist {
				p := toPhoneme
				best = &p
				bestDist = dist
			}
		}
	}
	if best != nil {
		return GuessedPhonemes{Phonemes: []phoneme.Phoneme{*best}, Distance: bestDist}, nil
	}

	if letterCount(from.Phone.Letters) > 1 {
		return guessSplit(from, to)
	}

	neighbors, ok, err := Closest(tableSymbol)
	if err != nil {
		return GuessedPhonemes{}, err
	}
	if ok {
		for _, neighbor := range neighbors {
			if ph, found := to.Get(neighbor); found {
				return GuessedPhonemes{Phonemes: []phoneme.Phoneme{ph}, Distance: 0.5}, nil
			}
		}
	}

	// Last resort: any target phoneme starting with the same letter.
	first := firstLetter(from.Phone.Letters)
	for i := range to.Phonemes {
		if firstLetter(to.Phonemes[i].Phone.Letters) == first {
			return GuessedPhonemes{Phonemes: []phoneme.Phoneme{to.Phonemes[i]}, Distance: 10}, nil
		}
	}

	return GuessedPhonemes{}, nil
}

// GuessText is GuessPhonemes for a raw phoneme string.
func GuessText(from string, to *phoneme.Inventory) (GuessedPhonemes, error) {
	ph, err := phoneme.New(from)
	if err != nil {
		return GuessedPhonemes{}, err
	}
	return GuessPhonemes(ph, to)
}

// guessSplit breaks a multi-letter phoneme into its single-letter phones
// (ignoring ties) and matches each independently.
func guessSplit(from phoneme.Phoneme, to *phoneme.Inventory) (GuessedPhonemes, error) {
	var combined GuessedPhonemes

	for _, cluster := range phone.Clusters(from.TextCompare(), phone.KeepTies(false)) {
		part, err := phoneme.New(cluster)
		if err != nil {
			continue
		}
		guess, err := GuessPhonemes(part, to)
		if err != nil {
			return GuessedPhonemes{}, err
		}
		combined.Phonemes = append(combined.Phonemes, guess.Phonemes...)
		combined.Distance += 1 + guess.Distance
	}

	return combined, nil
}

// GuessPhonemeMap guesses a full mapping from every phoneme of one
// language onto another. R-like source phonemes are forced onto an r-like
// target when one exists.
func GuessPhonemeMap(from, to *phoneme.Inventory) (map[string][]string, error) {
	mapping := make(map[string][]string, len(from.Phonemes))

	for i := range from.Phonemes {
		fromPhoneme := from.Phonemes[i]
		guess, err := GuessPhonemes(fromPhoneme, to)
		if err != nil {
			return nil, err
		}
		if len(guess.Phonemes) == 0 {
			continue
		}

		texts := make([]string, 0, len(guess.Phonemes))
		for _, ph := range guess.Phonemes {
			texts = append(texts, ph.Text())
		}

		if slices.Contains(rLike, fromPhoneme.TextCompare()) &&
			(len(texts) != 1 || !slices.Contains(rLike, texts[0])) {
			for _, r := range rLike {
				if _, ok := to.Get(r); ok {
					texts = []string{r}
					break
				}
			}
		}

		mapping[fromPhoneme.Text()] = texts
	}

	return mapping, nil
}

func runeLen(s string) int { return len([]rune(s)) }

// letterCount counts base letters, ignoring tie bars.
func letterCount(letters string) int {
	n := 0
	for _, r := range letters {
		if !ipa.IsTie(r) && !ipa.IsCombining(r) {
			n++
		}
	}
	return n
}

func firstLetter(letters string) rune {
	for _, r := range letters {
		return r
	}
	return 0
}
