package accent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieee0824/ipa-go/phoneme"
)

func guessTexts(g GuessedPhonemes) []string {
	var texts []string
	for _, ph := range g.Phonemes {
		texts = append(texts, ph.Text())
	}
	return texts
}

func load(t *testing.T, lang string) *phoneme.Inventory {
	t.Helper()
	inv, err := phoneme.FromLanguage(lang)
	require.NoError(t, err)
	return inv
}

func TestClosest(t *testing.T) {
	for probe, want := range map[string]string{
		"p": "t",
		"ɑ": "ɒ",
		"ɝ": "ɚ",
	} {
		neighbors, ok, err := Closest(probe)
		require.NoError(t, err)
		require.True(t, ok, "symbol %s", probe)
		require.NotEmpty(t, neighbors)
		assert.Equal(t, want, neighbors[0], "closest to %s", probe)
	}

	_, ok, err := Closest("ʘ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGuessExact(t *testing.T) {
	enUS := load(t, "en-us")

	g, err := GuessText("t", enUS)
	require.NoError(t, err)
	assert.Equal(t, []string{"t"}, guessTexts(g))
	assert.Zero(t, g.Distance)
}

func TestGuessEquivalenceClasses(t *testing.T) {
	enUS := load(t, "en-us")
	deDE := load(t, "de-de")
	frFR := load(t, "fr-fr")

	// Both written forms of the voiced velar plosive map to whichever
	// the target carries.
	g, err := GuessText("g", enUS)
	require.NoError(t, err)
	assert.Equal(t, []string{"ɡ"}, guessTexts(g))
	assert.Zero(t, g.Distance)

	// Trilled r maps onto the target's r-like consonant.
	g, err = GuessText("r", deDE)
	require.NoError(t, err)
	assert.Equal(t, []string{"ʁ"}, guessTexts(g))
	assert.Zero(t, g.Distance)

	g, err = GuessText("r", enUS)
	require.NoError(t, err)
	assert.Equal(t, []string{"ɹ"}, guessTexts(g))

	// Glottal stop survives where the target has one and is dropped
	// where it does not.
	g, err = GuessText("ʔ", deDE)
	require.NoError(t, err)
	assert.Equal(t, []string{"ʔ"}, guessTexts(g))

	g, err = GuessText("ʡ", frFR)
	require.NoError(t, err)
	assert.Empty(t, g.Phonemes)
}

func TestGuessSchwa(t *testing.T) {
	deDE := load(t, "de-de")

	g, err := GuessText("ɚ", deDE)
	require.NoError(t, err)
	assert.Equal(t, []string{"ə"}, guessTexts(g))
	assert.Zero(t, g.Distance)
}

func TestGuessSameLetters(t *testing.T) {
	deDE := load(t, "de-de")

	// Differs from the target only by the non-syllabic mark and
	// elongation.
	g, err := GuessText("ɐ̯ː", deDE)
	require.NoError(t, err)
	assert.Equal(t, []string{"ɐ"}, guessTexts(g))
	assert.InDelta(t, 0.2, g.Distance, 1e-9)

	g, err = GuessText("aʊ", deDE)
	require.NoError(t, err)
	assert.Equal(t, []string{"aʊ̯"}, guessTexts(g))
	assert.InDelta(t, 0.1, g.Distance, 1e-9)
}

func TestGuessDistanceTable(t *testing.T) {
	deDE := load(t, "de-de")

	g, err := GuessText("ɑ", deDE)
	require.NoError(t, err)
	assert.Equal(t, []string{"ɐ"}, guessTexts(g))
	assert.InDelta(t, 0.5, g.Distance, 1e-9)

	g, err = GuessText("ð", deDE)
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, guessTexts(g))
	assert.InDelta(t, 0.5, g.Distance, 1e-9)
}

func TestGuessSplit(t *testing.T) {
	deDE := load(t, "de-de")

	g, err := GuessText("oʊ", deDE)
	require.NoError(t, err)
	assert.Equal(t, []string{"oː", "ʊ"}, guessTexts(g))
	assert.InDelta(t, 2.1, g.Distance, 1e-9)
}

func TestGuessExhausted(t *testing.T) {
	enUS := load(t, "en-us")

	// A click is in no table and shares no first letter with English.
	g, err := GuessText("ʘ", enUS)
	require.NoError(t, err)
	assert.Empty(t, g.Phonemes)
}

func TestGuessDeterminism(t *testing.T) {
	deDE := load(t, "de-de")

	first, err := GuessText("ð", deDE)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := GuessText("ð", deDE)
		require.NoError(t, err)
		assert.Equal(t, guessTexts(first), guessTexts(again))
		assert.Equal(t, first.Distance, again.Distance)
	}
}

func TestGuessPhonemeMap(t *testing.T) {
	enUS := load(t, "en-us")
	deDE := load(t, "de-de")

	mapping, err := GuessPhonemeMap(enUS, deDE)
	require.NoError(t, err)

	assert.Equal(t, []string{"aʊ̯"}, mapping["aʊ"])
	assert.Equal(t, []string{"aɪ̯"}, mapping["aɪ"])
	assert.Equal(t, []string{"oː", "ʊ"}, mapping["oʊ"])
	assert.Equal(t, []string{"ʁ"}, mapping["ɹ"])
	assert.Equal(t, []string{"ə"}, mapping["ə"])
	assert.Equal(t, []string{"t͡ʃ"}, mapping["t͡ʃ"])
}
