// Package sampa converts between IPA and the SAMPA phonetic notation
// with a fixed codepoint substitution table.
package sampa

import (
	"slices"
	"strings"

	ipa "github.com/ieee0824/ipa-go"
)

// pair is one substitution. An empty SAMPA side deletes the IPA
// codepoint on conversion. Order matters: when two IPA keys map to the
// same SAMPA symbol, the later pair wins on the reverse conversion.
type pair struct {
	ipa   string
	sampa string
}

var table = []pair{
	{"a", "a"},
	{"\u0250", "6"},
	{"\u0251", "A"},
	{"\u0252", "Q"},
	{"\u00E6", "{"},
	{"\u028C", "V"},
	{"b", "b"},
	{"\u0253", ""},
	{"\u0299", "B\\"},
	{"\u03B2", "B"},
	{"c", "c"},
	{"\u00E7", "C"},
	{"c\u0327", "C"},
	{"\u0255", "s\\"},
	{"d", "d"},
	{"\u0257", ""},
	{"\u0256", "d`"},
	{"\u00F0", "D"},
	{"e", "e"},
	{"\u0259", "@"},
	{"\u025A", "@`"},
	{"\u0258", "@\\"},
	{"\u025B", "E"},
	{"\u025C", "3"},
	{"\u025D", "@`"},
	{"\u025E", "3\\"},
	{"f", "f"},
	{"\u0261", "g"},
	{"g", "g"},
	{"\u0260", ""},
	{"\u0262", "G\\"},
	{"\u029B", "G\\_<"},
	{"\u0263", "G"},
	{"\u02E0", "_G"},
	{"\u0264", "7"},
	{"h", "h"},
	{"\u02B0", "_h"},
	{"\u0127", "X\\"},
	{"\u0266", "h\\"},
	{"\u0267", "x\\"},
	{"\u0265", "H"},
	{"\u029C", "H\\"},
	{"i", "i"},
	{"\u0268", "1"},
	{"\u026A", "I"},
	{"j", "j"},
	{"\u02B2", "_j"},
	{"\u029D", "j\\"},
	{"\u025F", "J\\"},
	{"\u0284", "J\\_<"},
	{"k", "k"},
	{"l", "l"},
	{"\u026B", "5"},
	{"\u026C", "K"},
	{"\u026D", "l`"},
	{"\u026E", "K\\"},
	{"\u029F", "L\\"},
	{"m", "m"},
	{"\u0271", "F"},
	{"\u026F", "M"},
	{"\u0270", "M\\"},
	{"n", "n"},
	{"\u0272", "J"},
	{"\u014B", "N"},
	{"\u0273", "n`"},
	{"\u0274", "N\\"},
	{"o", "o"},
	{"\u0298", "O\\"},
	{"\u0275", "8"},
	{"\u00F8", "2"},
	{"\u0153", "9"},
	{"\u0276", "&"},
	{"\u0254", "O"},
	{"p", "p"},
	{"\u0278", "p\\"},
	{"q", "q"},
	{"r", "r"},
	{"\u027E", "4"},
	{"\u027C", ""},
	{"\u027D", "r`"},
	{"\u0279", "r\\"},
	{"\u027B", "r\\`"},
	{"\u027A", "l\\"},
	{"\u0280", "R\\"},
	{"\u0281", "R"},
	{"s", "s"},
	{"\u0282", "s`"},
	{"\u0283", "S"},
	{"t", "t"},
	{"\u0288", "t`"},
	{"\u03B8", "T"},
	{"u", "u"},
	{"\u0289", "}"},
	{"\u028A", "U"},
	{"v", "v"},
	{"\u028B", "v\\"},
	{"w", "w"},
	{"\u02B7", "_w"},
	{"\u028D", "W"},
	{"x", "x"},
	{"\u03C7", "X"},
	{"y", "y"},
	{"\u028E", "L"},
	{"\u028F", "Y"},
	{"z", "z"},
	{"\u0291", "z\\"},
	{"\u0290", "z`"},
	{"\u0292", "Z"},
	{"\u0294", "?"},
	{"\u02A1", ">\\"},
	{"\u0295", "?\\"},
	{"\u02A2", "<\\"},
	{"\u02E4", "_?\\"},
	{"\u01C3", "!\\"},
	{"\u01C0", "|\\"},
	{"\u01C1", "|\\|\\"},
	{"\u0320", "_-"},
	{"\u032A", "_d"},
	{"\u033A", "_a"},
	{"\u031F", "_+"},
	{"\u031D", "_r"},
	{"\u031E", "_o"},
	{"\u02C8", "\""},
	{"\u02CC", "%"},
	{"\u031A", "_}"},
	{".", ""},
	{"\u02D1", ":\\"},
	{"\u0308", "_\""},
	{"\u0324", "_t"},
	{"\u02D0", ":"},
	{"\u02BC", ""},
	{"\u0325", "_0"},
	{"\u030A", ""},
	{"\u031C", "_c"},
	{"\u0339", "_O"},
	{"\u0303", "~"},
	{"\u0334", "_e"},
	{"\u0330", "_k"},
	{"\u032C", "_v"},
	{"\u0306", "_X"},
	{"\u032F", "_^"},
	{"\u033D", ""},
	{"\u02DE", "`"},
	{"\u033B", "_m"},
	{"\u0318", "_A"},
	{"\u0319", "_q"},
	{"\u033C", "_N"},
	{"\u2197", "<R>"},
	{"\u2191", "^"},
	{"\u2198", ""},
	{"\u2193", "!"},
	{"\u030F", "_B"},
	{"\u0300", "_L"},
	{"\u0304", "_M"},
	{"\u0301", "_H"},
	{"\u030B", "_T"},
	{"\u0361", ""},
	{"\u035C", ""},
	{"\u0288\u0361\u0282", "ts`"},
	{"\u0256\u0361\u0290", "dz`"},
	{"k\u0361x", "k_x"},
	{"|", ""},
	{"\u2016", ""},
	{"#", ""},
}

var (
	ipaKeys   []string // length-descending
	sampaKeys []string // length-descending
	toSampa   = make(map[string]string, len(table))
	toIPA     = make(map[string]string, len(table))
)

func init() {
	for _, p := range table {
		toSampa[p.ipa] = p.sampa
		if p.sampa != "" {
			toIPA[p.sampa] = p.ipa
		}
	}
	for k := range toSampa {
		ipaKeys = append(ipaKeys, k)
	}
	for k := range toIPA {
		sampaKeys = append(sampaKeys, k)
	}
	sortKeys(ipaKeys)
	sortKeys(sampaKeys)
}

// FromIPA converts an IPA string to SAMPA phonemes. Codepoints with no
// mapping pass through unchanged.
func FromIPA(s string) string {
	return substitute(ipa.NFD(s), ipaKeys, toSampa)
}

// ToIPA converts SAMPA phonemes to IPA phones.
func ToIPA(s string) string {
	return substitute(ipa.NFD(s), sampaKeys, toIPA)
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
