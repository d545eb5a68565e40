package feature

import (
	"fmt"

	ipa "github.com/ieee0824/ipa-go"
	"github.com/ieee0824/ipa-go/catalog"
)

// StringToSymbol resolves an IPA string to its catalog symbol. Leading
// stress marks and trailing length marks are lifted into the symbol's
// attributes before the table lookup.
func StringToSymbol(s string) (catalog.Symbol, error) {
	s = ipa.NFC(s)
	if s == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	switch s {
	case string(ipa.MinorBreak):
		return catalog.Break{Type: ipa.BreakMinor}, nil
	case string(ipa.MajorBreak):
		return catalog.Break{Type: ipa.BreakMajor}, nil
	case string(ipa.WordBreak):
		return catalog.Break{Type: ipa.BreakWord}, nil
	}

	runes := []rune(s)

	var stress ipa.Stress
	switch runes[0] {
	case ipa.PrimaryStress:
		stress = ipa.StressPrimary
		runes = runes[1:]
	case ipa.SecondaryStress:
		stress = ipa.StressSecondary
		runes = runes[1:]
	}

	phonemeLength := ipa.LengthNormal
trim:
	for len(runes) > 0 {
		switch runes[len(runes)-1] {
		case ipa.LongMark:
			phonemeLength = ipa.LengthLong
		case ipa.HalfLongMark, ipa.ExtraShortMark:
			phonemeLength = ipa.LengthShort
		default:
			break trim
		}
		runes = runes[:len(runes)-1]
	}

	base := string(runes)

	if vowel, ok := catalog.Vowels[base]; ok {
		vowel.Stress = stress
		vowel.Length = phonemeLength
		return vowel, nil
	}
	if consonant, ok := catalog.Consonants[base]; ok {
		consonant.Length = phonemeLength
		return consonant, nil
	}
	if schwa, ok := catalog.Schwas[base]; ok {
		schwa.Length = phonemeLength
		return schwa, nil
	}

	return nil, fmt.Errorf("unsupported symbol %q", s)
}

func ipaStress(s string) ipa.Stress { return ipa.Stress(s) }

func length(s string) ipa.Length {
	if s == featureEmpty {
		return ipa.LengthNormal
	}
	return ipa.Length(s)
}

func breakType(s string) ipa.BreakType { return ipa.BreakType(s) }
