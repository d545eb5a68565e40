// Package espeak converts between IPA and the eSpeak phoneme notation
// with a fixed codepoint substitution table.
package espeak

import (
	"slices"
	"strings"

	ipa "github.com/ieee0824/ipa-go"
)

// pair is one substitution. An empty eSpeak side deletes the IPA
// codepoint on conversion. Order matters: when two IPA keys map to the
// same eSpeak symbol, the later pair wins on the reverse conversion.
type pair struct {
	ipa    string
	espeak string
}

var table = []pair{
	{"\u00E6", "a"},
	{"a", "a"},
	{"\u0251", "A"},
	{"\u0252", "A."},
	{"\u028C", "V"},
	{"\u0250", "V"},
	{"b", "b"},
	{"\u0253", "b`"},
	{"\u0299", "b<trl>"},
	{"\u03B2", "B"},
	{"c", "c"},
	{"\u00E7", "C"},
	{"c\u0327", "C"},
	{"\u0255", "S;"},
	{"d", "d"},
	{"\u0257", "d`"},
	{"\u0256", "d."},
	{"\u00F0", "D"},
	{"e", "e"},
	{"\u0259", "@"},
	{"\u025A", "3"},
	{"\u0258", "@"},
	{"\u025B", "E"},
	{"\u025C", "V\""},
	{"\u025D", "3"},
	{"\u025E", "O\""},
	{"f", "f"},
	{"\u0261", "g"},
	{"g", "g"},
	{"\u0260", "g`"},
	{"\u0262", "G"},
	{"\u029B", "G`"},
	{"\u0263", "Q"},
	{"\u02E0", "~"},
	{"\u0264", "o-"},
	{"h", "h"},
	{"\u02B0", "<h>"},
	{"\u0127", "H"},
	{"\u0266", "h<?>"},
	{"\u0267", ""},
	{"\u0265", "j<rnd>"},
	{"\u029C", ""},
	{"i", "i"},
	{"\u0268", "i\""},
	{"\u026A", "I"},
	{"j", "j"},
	{"\u02B2", ";"},
	{"\u029D", "C<vcd>"},
	{"\u025F", "J"},
	{"\u0284", "J`"},
	{"k", "k"},
	{"l", "l"},
	{"\u026B", "l"},
	{"\u026C", "s<lat>"},
	{"\u026D", "l."},
	{"\u026E", "z<lat>"},
	{"\u029F", "L"},
	{"m", "m"},
	{"\u0271", "M"},
	{"\u026F", "u-"},
	{"\u0270", "Q"},
	{"n", "n"},
	{"\u0272", "n^"},
	{"\u014B", "N"},
	{"\u0273", "n."},
	{"\u0274", "n\""},
	{"o", "o"},
	{"\u0298", "p!"},
	{"\u0275", "@."},
	{"\u00F8", "Y"},
	{"\u0153", "W"},
	{"\u0276", "W"},
	{"\u0254", "O"},
	{"p", "p"},
	{"\u0278", "F"},
	{"q", "q"},
	{"r", "r<trl>"},
	{"\u027E", "R"},
	{"\u027C", ""},
	{"\u027D", "*."},
	{"\u0279", "r"},
	{"\u027B", "r."},
	{"\u027A", "*<lat>"},
	{"\u0280", "r\""},
	{"\u0281", "r"},
	{"s", "s"},
	{"\u0282", "s."},
	{"\u0283", "S"},
	{"t", "t"},
	{"\u0288", "t."},
	{"\u03B8", "T"},
	{"u", "u"},
	{"\u0289", "u\""},
	{"\u028A", "U"},
	{"v", "v"},
	{"\u028B", "v#"},
	{"w", "w"},
	{"\u02B7", "<w>"},
	{"\u028D", "w<vls>"},
	{"x", "x"},
	{"\u03C7", "X"},
	{"y", "y"},
	{"\u028E", "l^"},
	{"\u028F", "I."},
	{"z", "z"},
	{"\u0291", "Z;"},
	{"\u0290", "z."},
	{"\u0292", "Z"},
	{"\u0294", "?"},
	{"\u02A1", ""},
	{"\u0295", "H<vcd>"},
	{"\u02A2", ""},
	{"\u02E4", "<H>"},
	{"\u01C3", "c!"},
	{"\u01C0", "t!"},
	{"\u01C2", "c!"},
	{"\u01C1", "l!"},
	{"\u0320", ""},
	{"\u032A", ""},
	{"\u033A", ""},
	{"\u031F", ""},
	{"\u031D", ""},
	{"\u031E", ""},
	{"\u02C8", "'"},
	{"\u02CC", ","},
	{"\u0329", "-"},
	{"\u031A", "<o>"},
	{".", ""},
	{"\u02D1", ""},
	{"\u0308", ""},
	{"\u0324", "<?>"},
	{"\u02D0", ":"},
	{"\u02BC", "`"},
	{"\u0325", "<o>"},
	{"\u030A", ""},
	{"\u031C", ""},
	{"\u0339", ""},
	{"\u0303", "~"},
	{"\u0334", "~"},
	{"\u0330", ""},
	{"\u032C", ""},
	{"\u0306", ""},
	{"\u032F", ""},
	{"\u033D", ""},
	{"\u02DE", "<r>"},
	{"\u033B", ""},
	{"\u0318", ""},
	{"\u0319", ""},
	{"\u033C", ""},
	{"\u2197", ""},
	{"\u2191", ""},
	{"\u2198", ""},
	{"\u2193", ""},
	{"\u0361", ""},
	{"\u035C", ""},
	{"\u0288\u0361\u0282", "tS"},
	{"\u0256\u0361\u0290", "dz"},
	{"|", "_::"},
	{"\u2016", "_::_::"},
	{"#", ""},
}

var (
	ipaKeys    []string // length-descending
	espeakKeys []string // length-descending
	toESpeak   = make(map[string]string, len(table))
	toIPA      = make(map[string]string, len(table))
)

func init() {
	for _, p := range table {
		toESpeak[p.ipa] = p.espeak
		if p.espeak != "" {
			toIPA[p.espeak] = p.ipa
		}
	}
	for k := range toESpeak {
		ipaKeys = append(ipaKeys, k)
	}
	for k := range toIPA {
		espeakKeys = append(espeakKeys, k)
	}
	sortKeys(ipaKeys)
	sortKeys(espeakKeys)
}

// FromIPA converts an IPA string to eSpeak phonemes. Codepoints with no
// mapping pass through unchanged.
func FromIPA(s string) string {
	return substitute(ipa.NFD(s), ipaKeys, toESpeak)
}

// ToIPA converts eSpeak phonemes to IPA phones. Brackets around the
// phoneme string are removed first.
func ToIPA(s string) string {
	s = strings.NewReplacer("[", "", "]", "").Replace(ipa.NFD(s))
	return substitute(s, espeakKeys, toIPA)
}

// substitute rewrites s with a longest-first scan over the table keys.
func substitute(s string, keys []string, mapping map[string]string) string {
	var sb strings.Builder
	for i := 0; i < len(s); {
		matched := false
		for _, key := range keys {
			if strings.HasPrefix(s[i:], key) {
				sb.WriteString(mapping[key])
				i += len(key)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(s[i])
			i++
		}
	}
	return sb.String()
}

func sortKeys(keys []string) {
	slices.SortFunc(keys, func(a, b string) int {
		if d := len(b) - len(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
}
