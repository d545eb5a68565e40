// Package catalog holds the reference tables of IPA vowels, consonants,
// and schwas together with their articulatory attributes.
package catalog

import (
	ipa "github.com/ieee0824/ipa-go"
)

// VowelHeight is the height of a vowel.
type VowelHeight string

const (
	Close     VowelHeight = "close"
	NearClose VowelHeight = "near-close"
	CloseMid  VowelHeight = "close-mid"
	Mid       VowelHeight = "mid"
	OpenMid   VowelHeight = "open-mid"
	NearOpen  VowelHeight = "near-open"
	Open      VowelHeight = "open"
)

// VowelHeights lists all heights from close to open.
func VowelHeights() []VowelHeight {
	return []VowelHeight{Close, NearClose, CloseMid, Mid, OpenMid, NearOpen, Open}
}

// VowelPlacement is the front/back placement of a vowel.
type VowelPlacement string

const (
	Front     VowelPlacement = "front"
	NearFront VowelPlacement = "near-front"
	Central   VowelPlacement = "central"
	NearBack  VowelPlacement = "near-back"
	Back      VowelPlacement = "back"
)

// VowelPlacements lists all placements from front to back.
func VowelPlacements() []VowelPlacement {
	return []VowelPlacement{Front, NearFront, Central, NearBack, Back}
}

// ConsonantType is the manner of articulation of a consonant.
type ConsonantType string

const (
	Nasal              ConsonantType = "nasal"
	Plosive            ConsonantType = "plosive"
	Affricate          ConsonantType = "affricate"
	Fricative          ConsonantType = "fricative"
	Approximant        ConsonantType = "approximant"
	Flap               ConsonantType = "flap"
	Trill              ConsonantType = "trill"
	LateralApproximant ConsonantType = "lateral-approximant"
)

// ConsonantTypes lists all manners of articulation.
func ConsonantTypes() []ConsonantType {
	return []ConsonantType{
		Nasal, Plosive, Affricate, Fricative,
		Approximant, Flap, Trill, LateralApproximant,
	}
}

// ConsonantPlace is the place of articulation of a consonant.
type ConsonantPlace string

const (
	Bilabial     ConsonantPlace = "bilabial"
	LabioDental  ConsonantPlace = "labio-dental"
	Dental       ConsonantPlace = "dental"
	Alveolar     ConsonantPlace = "alveolar"
	PostAlveolar ConsonantPlace = "post-alveolar"
	Retroflex    ConsonantPlace = "retroflex"
	Palatal      ConsonantPlace = "palatal"
	Velar        ConsonantPlace = "velar"
	Uvular       ConsonantPlace = "uvular"
	Pharyngeal   ConsonantPlace = "pharyngeal"
	Glottal      ConsonantPlace = "glottal"
)

// ConsonantPlaces lists all places of articulation from front to back.
func ConsonantPlaces() []ConsonantPlace {
	return []ConsonantPlace{
		Bilabial, LabioDental, Dental, Alveolar, PostAlveolar,
		Retroflex, Palatal, Velar, Uvular, Pharyngeal, Glottal,
	}
}

// SoundsLike groups consonants that are perceptually interchangeable for
// cross-language matching (r-like, l-like, the two forms of "g").
type SoundsLike string

const (
	SoundsLikeNone SoundsLike = ""
	SoundsLikeR    SoundsLike = "r"
	SoundsLikeL    SoundsLike = "l"
	SoundsLikeG    SoundsLike = "g"
)

// Vowel is one catalog vowel.
type Vowel struct {
	IPA       string
	Height    VowelHeight
	Placement VowelPlacement
	Rounded   bool
	Nasalated bool
	Stress    ipa.Stress // "" when no stress attribute is attached
	Length    ipa.Length
	Alias     string // canonical symbol when this entry is an alias
}

func (Vowel) isSymbol() {}

// Consonant is one catalog consonant.
type Consonant struct {
	IPA        string
	Type       ConsonantType
	Place      ConsonantPlace
	Voiced     bool
	Velarized  bool
	SoundsLike SoundsLike
	Length     ipa.Length
	Alias      string
}

func (Consonant) isSymbol() {}

// Schwa is a vowel-like reduced sound.
type Schwa struct {
	IPA       string
	RColoured bool
	Length    ipa.Length
	Alias     string
}

func (Schwa) isSymbol() {}

// Dipthong is a combination of two vowels treated as one unit.
type Dipthong struct {
	Vowel1 Vowel
	Vowel2 Vowel
}

// Break is a prosodic break symbol.
type Break struct {
	Type ipa.BreakType
}

func (Break) isSymbol() {}

// Symbol is the closed set of catalog symbol kinds handled by the feature
// codec: Vowel, Consonant, Schwa, or Break.
type Symbol interface {
	isSymbol()
}

// Vowels maps an NFC IPA string to its catalog vowel.
var Vowels = make(map[string]Vowel, len(vowelTable))

// Consonants maps an NFC IPA string to its catalog consonant.
var Consonants = make(map[string]Consonant, len(consonantTable))

// Schwas maps an NFC IPA string to its catalog schwa.
var Schwas = make(map[string]Schwa, len(schwaTable))

func init() {
	for i := range vowelTable {
		if vowelTable[i].Length == "" {
			vowelTable[i].Length = ipa.LengthNormal
		}
		Vowels[vowelTable[i].IPA] = vowelTable[i]
	}
	for i := range consonantTable {
		if consonantTable[i].Length == "" {
			consonantTable[i].Length = ipa.LengthNormal
		}
		Consonants[consonantTable[i].IPA] = consonantTable[i]
	}
	for i := range schwaTable {
		if schwaTable[i].Length == "" {
			schwaTable[i].Length = ipa.LengthNormal
		}
		Schwas[schwaTable[i].IPA] = schwaTable[i]
	}
}

// AllVowels returns the catalog vowels in table order.
func AllVowels() []Vowel { return vowelTable }

// AllConsonants returns the catalog consonants in table order.
func AllConsonants() []Consonant { return consonantTable }

// AllSchwas returns the catalog schwas in table order.
func AllSchwas() []Schwa { return schwaTable }
