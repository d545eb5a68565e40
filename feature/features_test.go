package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ipa "github.com/ieee0824/ipa-go"
	"github.com/ieee0824/ipa-go/catalog"
)

func TestVectorSize(t *testing.T) {
	assert.Equal(t, 30, VectorSize())

	vec, err := ToVector(catalog.Vowels["a"])
	require.NoError(t, err)
	assert.Len(t, vec, VectorSize())
}

func TestVowelRoundTrip(t *testing.T) {
	for _, vowel := range catalog.AllVowels() {
		if vowel.Alias != "" {
			continue
		}

		variants := []catalog.Vowel{vowel}

		stressed := vowel
		stressed.Stress = ipa.StressPrimary
		variants = append(variants, stressed)

		stressed.Stress = ipa.StressSecondary
		variants = append(variants, stressed)

		long := vowel
		long.Length = ipa.LengthLong
		variants = append(variants, long)

		for _, want := range variants {
			vec, err := ToVector(want)
			require.NoError(t, err, "vowel %s", want.IPA)

			got, err := FromVector(vec)
			require.NoError(t, err, "vowel %s", want.IPA)
			assert.Equal(t, want, got, "vowel %s", want.IPA)
		}
	}
}

func TestConsonantRoundTrip(t *testing.T) {
	for _, consonant := range catalog.AllConsonants() {
		if consonant.Alias != "" {
			continue
		}

		long := consonant
		long.Length = ipa.LengthLong

		for _, want := range []catalog.Consonant{consonant, long} {
			vec, err := ToVector(want)
			require.NoError(t, err, "consonant %s", want.IPA)

			got, err := FromVector(vec)
			require.NoError(t, err, "consonant %s", want.IPA)
			assert.Equal(t, want, got, "consonant %s", want.IPA)
		}
	}
}

func TestSchwaRoundTrip(t *testing.T) {
	for _, symbol := range []string{"ə", "ɚ"} {
		want := catalog.Schwas[symbol]

		vec, err := ToVector(want)
		require.NoError(t, err)

		got, err := FromVector(vec)
		require.NoError(t, err)
		assert.Equal(t, want, got, "schwa %s", symbol)
	}
}

func TestSchwaDecodesToCanonical(t *testing.T) {
	// ɝ and ɚ share all encoded attributes, so the table-first entry wins.
	vec, err := ToVector(catalog.Schwas["ɝ"])
	require.NoError(t, err)

	got, err := FromVector(vec)
	require.NoError(t, err)
	assert.Equal(t, catalog.Symbol(catalog.Schwas["ɚ"]), got)
}

func TestBreakRoundTrip(t *testing.T) {
	for _, bt := range []ipa.BreakType{ipa.BreakMinor, ipa.BreakMajor, ipa.BreakWord} {
		vec, err := ToVector(catalog.Break{Type: bt})
		require.NoError(t, err)

		got, err := FromVector(vec)
		require.NoError(t, err)
		assert.Equal(t, catalog.Symbol(catalog.Break{Type: bt}), got)
	}
}

func TestStringToSymbol(t *testing.T) {
	sym, err := StringToSymbol("ˈãː")
	require.NoError(t, err)
	vowel, ok := sym.(catalog.Vowel)
	require.True(t, ok)
	assert.True(t, vowel.Nasalated)
	assert.Equal(t, ipa.StressPrimary, vowel.Stress)
	assert.Equal(t, ipa.LengthLong, vowel.Length)

	sym, err = StringToSymbol("ɫː")
	require.NoError(t, err)
	consonant, ok := sym.(catalog.Consonant)
	require.True(t, ok)
	assert.True(t, consonant.Velarized)
	assert.Equal(t, ipa.LengthLong, consonant.Length)

	sym, err = StringToSymbol("ɚː")
	require.NoError(t, err)
	schwa, ok := sym.(catalog.Schwa)
	require.True(t, ok)
	assert.True(t, schwa.RColoured)
	assert.Equal(t, ipa.LengthLong, schwa.Length)

	sym, err = StringToSymbol("‖")
	require.NoError(t, err)
	assert.Equal(t, catalog.Symbol(catalog.Break{Type: ipa.BreakMajor}), sym)

	_, err = StringToSymbol("")
	assert.Error(t, err)

	_, err = StringToSymbol("0")
	assert.Error(t, err)
}

func TestDistance(t *testing.T) {
	va, err := ToVector(catalog.Vowels["a"])
	require.NoError(t, err)
	assert.Zero(t, Distance(va, va))

	// p and t differ only in place; p and k differ more.
	vp, err := ToVector(catalog.Consonants["p"])
	require.NoError(t, err)
	vt, err := ToVector(catalog.Consonants["t"])
	require.NoError(t, err)
	vk, err := ToVector(catalog.Consonants["k"])
	require.NoError(t, err)
	assert.Less(t, Distance(vp, vt), Distance(vp, vk))

	assert.Len(t, DistanceWeights(), VectorSize())
}
