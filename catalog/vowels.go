package catalog

// -----------------------------------------------------------------
// Vowels        Front    Near-Front    Central    Near-Back    Back
// -----------------------------------------------------------------
// Close         i/y                    ɨ/ʉ                     ɯ/u
// Near-Close             ɪ/ʏ                      ʊ
// Close-Mid     e/ø                    ɘ/ɵ                     ɤ/o
// Mid                                  ə
// Open-Mid      ɛ/œ                    ɜ/ɞ                     ʌ/ɔ
// Near-Open     æ                      ɐ
// Open          a/ɶ                                            ɑ/ɒ
// -----------------------------------------------------------------

var vowelTable = []Vowel{
	{IPA: "i", Height: Close, Placement: Front},
	{IPA: "y", Height: Close, Placement: Front, Rounded: true},
	{IPA: "ɨ", Height: Close, Placement: Central},
	{IPA: "ʉ", Height: Close, Placement: Central, Rounded: true},
	{IPA: "ɯ", Height: Close, Placement: Back},
	{IPA: "u", Height: Close, Placement: Back, Rounded: true},

	{IPA: "ɪ", Height: NearClose, Placement: NearFront},
	{IPA: "ʏ", Height: NearClose, Placement: NearFront, Rounded: true},
	{IPA: "ʊ", Height: NearClose, Placement: NearBack, Rounded: true},

	{IPA: "e", Height: CloseMid, Placement: Front},
	{IPA: "ø", Height: CloseMid, Placement: Front, Rounded: true},
	{IPA: "ɘ", Height: CloseMid, Placement: Central},
	{IPA: "ɵ", Height: CloseMid, Placement: Central, Rounded: true},
	{IPA: "ɤ", Height: CloseMid, Placement: Back},
	{IPA: "o", Height: CloseMid, Placement: Back, Rounded: true},

	// The plain mid central vowel is represented as a schwa.

	{IPA: "ɛ", Height: OpenMid, Placement: Front},
	{IPA: "œ", Height: OpenMid, Placement: Front, Rounded: true},
	{IPA: "ɜ", Height: OpenMid, Placement: Central},
	{IPA: "ɞ", Height: OpenMid, Placement: Central, Rounded: true},
	{IPA: "ʌ", Height: OpenMid, Placement: Back},
	{IPA: "ɔ", Height: OpenMid, Placement: Back, Rounded: true},

	{IPA: "æ", Height: NearOpen, Placement: Front},
	{IPA: "ɐ", Height: NearOpen, Placement: Central},

	{IPA: "a", Height: Open, Placement: Front},
	{IPA: "ɶ", Height: Open, Placement: Front, Rounded: true},
	{IPA: "ɑ", Height: Open, Placement: Back},
	{IPA: "ɒ", Height: Open, Placement: Back, Rounded: true},

	// Nasalated variants.
	{IPA: "ĩ", Height: Close, Placement: Front, Nasalated: true},
	{IPA: "ũ", Height: Close, Placement: Back, Rounded: true, Nasalated: true},
	{IPA: "ẽ", Height: CloseMid, Placement: Front, Nasalated: true},
	{IPA: "õ", Height: CloseMid, Placement: Back, Rounded: true, Nasalated: true},
	{IPA: "ɛ̃", Height: OpenMid, Placement: Front, Nasalated: true},
	{IPA: "œ̃", Height: OpenMid, Placement: Front, Rounded: true, Nasalated: true},
	{IPA: "ɔ̃", Height: OpenMid, Placement: Back, Rounded: true, Nasalated: true},
	{IPA: "ɐ̃", Height: NearOpen, Placement: Central, Nasalated: true},
	{IPA: "ã", Height: Open, Placement: Front, Nasalated: true},
	{IPA: "ɑ̃", Height: Open, Placement: Back, Nasalated: true},
}
