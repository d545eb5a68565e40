// Package feature converts catalog symbols to and from fixed-width numeric
// feature vectors for distance computation.
package feature

import (
	"fmt"
	"math"

	"github.com/ieee0824/ipa-go/catalog"
)

// featureEmpty is the explicit "no value" entry present in every column.
const featureEmpty = ""

// column is one named column of the feature schema. Categorical columns
// are rendered as a one-hot block; ordinal columns as a single scalar
// (value index divided by cardinality).
type column struct {
	name    string
	values  []string
	ordinal bool
}

// columns is the fixed schema. Order is load-bearing: a vector is
// meaningless outside this exact layout.
var columns = buildColumns()

func buildColumns() []column {
	withEmpty := func(values ...string) []string {
		return append([]string{featureEmpty}, values...)
	}

	heights := make([]string, 0, 7)
	for _, h := range catalog.VowelHeights() {
		heights = append(heights, string(h))
	}
	places := make([]string, 0, 5)
	for _, p := range catalog.VowelPlacements() {
		places = append(places, string(p))
	}
	ctypes := make([]string, 0, 8)
	for _, t := range catalog.ConsonantTypes() {
		ctypes = append(ctypes, string(t))
	}
	cplaces := make([]string, 0, 11)
	for _, p := range catalog.ConsonantPlaces() {
		cplaces = append(cplaces, string(p))
	}

	return []column{
		{name: "symbol_type", values: withEmpty("phoneme", "break")},
		{name: "phoneme_type", values: withEmpty("vowel", "consonant", "schwa")},
		{name: "diacritic", values: withEmpty("nasalated", "velarized")},
		{name: "vowel_height", values: withEmpty(heights...), ordinal: true},
		{name: "vowel_place", values: withEmpty(places...), ordinal: true},
		{name: "vowel_rounded", values: withEmpty("rounded", "unrounded")},
		{name: "vowel_stress", values: withEmpty("none", "primary", "secondary")},
		{name: "consonant_voiced", values: withEmpty("voiced", "unvoiced")},
		{name: "consonant_type", values: withEmpty(ctypes...), ordinal: true},
		{name: "consonant_place", values: withEmpty(cplaces...), ordinal: true},
		{name: "consonant_sounds_like", values: withEmpty("r", "l", "g")},
		{name: "phoneme_length", values: withEmpty("short", "normal", "long"), ordinal: true},
		{name: "break_type", values: withEmpty("minor", "major", "word"), ordinal: true},
	}
}

// VectorSize returns the width of an encoded feature vector.
func VectorSize() int {
	size := 0
	for _, col := range columns {
		if col.ordinal {
			size++
		} else {
			size += len(col.values)
		}
	}
	return size
}

// ToVector encodes a catalog symbol as a feature vector. Columns not
// relevant to the symbol's kind hold the explicit "none" value.
func ToVector(sym catalog.Symbol) ([]float64, error) {
	features, err := symbolFeatures(sym)
	if err != nil {
		return nil, err
	}
	return featuresToVector(features), nil
}

// FromVector decodes a feature vector produced by ToVector back into a
// catalog symbol. It panics if a one-hot block does not hold exactly one
// set index: such a vector did not come from this schema's encoder.
func FromVector(vec []float64) (catalog.Symbol, error) {
	features := vectorToFeatures(vec)

	switch features["symbol_type"] {
	case "break":
		return breakFromFeatures(features)
	case "phoneme":
		switch features["phoneme_type"] {
		case "vowel":
			return vowelFromFeatures(features)
		case "consonant":
			return consonantFromFeatures(features)
		case "schwa":
			return schwaFromFeatures(features)
		}
		return nil, fmt.Errorf("unknown phoneme type %q", features["phoneme_type"])
	}
	return nil, fmt.Errorf("unknown symbol type %q", features["symbol_type"])
}

func symbolFeatures(sym catalog.Symbol) (map[string]string, error) {
	features := make(map[string]string)

	switch s := sym.(type) {
	case catalog.Vowel:
		features["symbol_type"] = "phoneme"
		features["phoneme_type"] = "vowel"
		features["vowel_height"] = string(s.Height)
		features["vowel_place"] = string(s.Placement)
		features["vowel_rounded"] = rounded(s.Rounded)
		features["phoneme_length"] = string(s.Length)
		if s.Nasalated {
			features["diacritic"] = "nasalated"
		}
		if s.Stress != "" {
			features["vowel_stress"] = string(s.Stress)
		}
	case catalog.Consonant:
		features["symbol_type"] = "phoneme"
		features["phoneme_type"] = "consonant"
		features["consonant_voiced"] = voiced(s.Voiced)
		features["consonant_type"] = string(s.Type)
		features["consonant_place"] = string(s.Place)
		features["phoneme_length"] = string(s.Length)
		if s.SoundsLike != catalog.SoundsLikeNone {
			features["consonant_sounds_like"] = string(s.SoundsLike)
		}
		if s.Velarized {
			features["diacritic"] = "velarized"
		}
	case catalog.Schwa:
		features["symbol_type"] = "phoneme"
		features["phoneme_type"] = "schwa"
		features["phoneme_length"] = string(s.Length)
		if s.RColoured {
			features["consonant_sounds_like"] = "r"
		}
	case catalog.Break:
		features["symbol_type"] = "break"
		features["break_type"] = string(s.Type)
	default:
		return nil, fmt.Errorf("unsupported symbol %v", sym)
	}

	return features, nil
}

func featuresToVector(features map[string]string) []float64 {
	vector := make([]float64, 0, VectorSize())

	for _, col := range columns {
		value, ok := features[col.name]
		if !ok {
			value = featureEmpty
		}

		if col.ordinal {
			vector = append(vector, float64(valueIndex(col, value))/float64(len(col.values)))
			continue
		}
		for _, v := range col.values {
			if v == value {
				vector = append(vector, 1.0)
			} else {
				vector = append(vector, 0.0)
			}
		}
	}

	return vector
}

func vectorToFeatures(vec []float64) map[string]string {
	features := make(map[string]string, len(columns))

	offset := 0
	for _, col := range columns {
		if col.ordinal {
			idx := int(math.Round(vec[offset] * float64(len(col.values))))
			if idx < 0 || idx >= len(col.values) {
				panic(fmt.Sprintf("feature: ordinal column %s out of range: %v", col.name, vec[offset]))
			}
			features[col.name] = col.values[idx]
			offset++
			continue
		}

		idx := -1
		for i, v := range vec[offset : offset+len(col.values)] {
			if v != 1.0 {
				continue
			}
			if idx >= 0 {
				panic(fmt.Sprintf("feature: one-hot column %s has multiple set indexes", col.name))
			}
			idx = i
		}
		if idx < 0 {
			panic(fmt.Sprintf("feature: one-hot column %s has no set index", col.name))
		}
		features[col.name] = col.values[idx]
		offset += len(col.values)
	}

	return features
}

func vowelFromFeatures(features map[string]string) (catalog.Symbol, error) {
	height := catalog.VowelHeight(features["vowel_height"])
	placement := catalog.VowelPlacement(features["vowel_place"])
	isRounded := features["vowel_rounded"] == "rounded"
	isNasalated := features["diacritic"] == "nasalated"

	for _, vowel := range catalog.AllVowels() {
		if vowel.Alias != "" {
			continue
		}
		if vowel.Height != height || vowel.Placement != placement {
			continue
		}
		if vowel.Rounded != isRounded || vowel.Nasalated != isNasalated {
			continue
		}
		if stress := features["vowel_stress"]; stress != featureEmpty {
			vowel.Stress = ipaStress(stress)
		}
		vowel.Length = length(features["phoneme_length"])
		return vowel, nil
	}
	return nil, fmt.Errorf("unknown vowel: %v", features)
}

func consonantFromFeatures(features map[string]string) (catalog.Symbol, error) {
	ctype := catalog.ConsonantType(features["consonant_type"])
	place := catalog.ConsonantPlace(features["consonant_place"])
	isVoiced := features["consonant_voiced"] == "voiced"
	isVelarized := features["diacritic"] == "velarized"

	for _, consonant := range catalog.AllConsonants() {
		if consonant.Alias != "" {
			continue
		}
		if consonant.Type != ctype || consonant.Place != place {
			continue
		}
		if consonant.Voiced != isVoiced || consonant.Velarized != isVelarized {
			continue
		}
		consonant.Length = length(features["phoneme_length"])
		return consonant, nil
	}
	return nil, fmt.Errorf("unknown consonant: %v", features)
}

func schwaFromFeatures(features map[string]string) (catalog.Symbol, error) {
	rColoured := features["consonant_sounds_like"] == "r"

	for _, schwa := range catalog.AllSchwas() {
		if schwa.Alias != "" {
			continue
		}
		if schwa.RColoured != rColoured {
			continue
		}
		schwa.Length = length(features["phoneme_length"])
		return schwa, nil
	}
	return nil, fmt.Errorf("unknown schwa: %v", features)
}

func breakFromFeatures(features map[string]string) (catalog.Symbol, error) {
	switch bt := features["break_type"]; bt {
	case "minor", "major", "word":
		return catalog.Break{Type: breakType(bt)}, nil
	default:
		return nil, fmt.Errorf("unknown break type %q", bt)
	}
}

func valueIndex(col column, value string) int {
	for i, v := range col.values {
		if v == value {
			return i
		}
	}
	panic(fmt.Sprintf("feature: column %s has no value %q", col.name, value))
}

func rounded(r bool) string {
	if r {
		return "rounded"
	}
	return "unrounded"
}

func voiced(v bool) string {
	if v {
		return "voiced"
	}
	return "unvoiced"
}
