package catalog

// --------------------------------------------------------------------------------------------------------------------------------------------
// Type         Bilabial    Labiodental    Dental    Alveolar    Postalveolar    Retroflex  Palatal    Velar    Uvular    Pharyngeal    Glottal
// --------------------------------------------------------------------------------------------------------------------------------------------
// Nasal        m           ɱ                        n                           ɳ          ɲ          ŋ        ɴ
// Plosive      p/b                                  t/d                         ʈ/ɖ        c/ɟ        k/ɡ      q/ɢ       ʡ             ʔ
// Affricate                p͡f/b͡v          t̪͡s       t͡s/d͡z       t͡ʃ/d͡ʒ           ʈ͡ʂ/ɖ͡ʐ      t͡ɕ/d͡ʑ      k͡x
// Fricative    ɸ/β         f/v            θ/ð       s/z         ʃ/ʒ             ʂ/ʐ        ç/ʝ        x/ɣ      χ/ʁ       ħ             h ɦ
// Approximant  w           ʋ                        ɹ                           ɻ          j          ɰ
// Flap                     ⱱ                        ɾ                           ɽ
// Trill        ʙ                                    r                                                          ʀ
// Lateral App                                       l ɫ                         ɭ          ʎ          ʟ
// --------------------------------------------------------------------------------------------------------------------------------------------

var consonantTable = []Consonant{
	{IPA: "m", Type: Nasal, Place: Bilabial, Voiced: true},
	{IPA: "ɱ", Type: Nasal, Place: LabioDental, Voiced: true},
	{IPA: "n", Type: Nasal, Place: Alveolar, Voiced: true},
	{IPA: "ɳ", Type: Nasal, Place: Retroflex, Voiced: true},
	{IPA: "ɲ", Type: Nasal, Place: Palatal, Voiced: true},
	{IPA: "ŋ", Type: Nasal, Place: Velar, Voiced: true},
	{IPA: "ɴ", Type: Nasal, Place: Uvular, Voiced: true},

	{IPA: "p", Type: Plosive, Place: Bilabial},
	{IPA: "b", Type: Plosive, Place: Bilabial, Voiced: true},
	{IPA: "t", Type: Plosive, Place: Alveolar},
	{IPA: "d", Type: Plosive, Place: Alveolar, Voiced: true},
	{IPA: "ʈ", Type: Plosive, Place: Retroflex},
	{IPA: "ɖ", Type: Plosive, Place: Retroflex, Voiced: true},
	{IPA: "c", Type: Plosive, Place: Palatal},
	{IPA: "ɟ", Type: Plosive, Place: Palatal, Voiced: true},
	{IPA: "k", Type: Plosive, Place: Velar},
	{IPA: "ɡ", Type: Plosive, Place: Velar, Voiced: true, SoundsLike: SoundsLikeG},
	{IPA: "g", Type: Plosive, Place: Velar, Voiced: true, SoundsLike: SoundsLikeG, Alias: "ɡ"},
	{IPA: "q", Type: Plosive, Place: Uvular},
	{IPA: "ɢ", Type: Plosive, Place: Uvular, Voiced: true},
	{IPA: "ʡ", Type: Plosive, Place: Pharyngeal},
	{IPA: "ʔ", Type: Plosive, Place: Glottal},

	{IPA: "p͡f", Type: Affricate, Place: LabioDental},
	{IPA: "b͡v", Type: Affricate, Place: LabioDental, Voiced: true},
	{IPA: "t̪͡s", Type: Affricate, Place: Dental},
	{IPA: "t͡s", Type: Affricate, Place: Alveolar},
	{IPA: "d͡z", Type: Affricate, Place: Alveolar, Voiced: true},
	{IPA: "t͡ʃ", Type: Affricate, Place: PostAlveolar},
	{IPA: "d͡ʒ", Type: Affricate, Place: PostAlveolar, Voiced: true},
	{IPA: "ʈ͡ʂ", Type: Affricate, Place: Retroflex},
	{IPA: "ɖ͡ʐ", Type: Affricate, Place: Retroflex, Voiced: true},
	{IPA: "t͡ɕ", Type: Affricate, Place: Palatal},
	{IPA: "d͡ʑ", Type: Affricate, Place: Palatal, Voiced: true},
	{IPA: "k͡x", Type: Affricate, Place: Velar},

	{IPA: "ɸ", Type: Fricative, Place: Bilabial},
	{IPA: "β", Type: Fricative, Place: Bilabial, Voiced: true},
	{IPA: "f", Type: Fricative, Place: LabioDental},
	{IPA: "v", Type: Fricative, Place: LabioDental, Voiced: true},
	{IPA: "θ", Type: Fricative, Place: Dental},
	{IPA: "ð", Type: Fricative, Place: Dental, Voiced: true},
	{IPA: "s", Type: Fricative, Place: Alveolar},
	{IPA: "z", Type: Fricative, Place: Alveolar, Voiced: true},
	{IPA: "ʃ", Type: Fricative, Place: PostAlveolar},
	{IPA: "ʒ", Type: Fricative, Place: PostAlveolar, Voiced: true},
	{IPA: "ʂ", Type: Fricative, Place: Retroflex},
	{IPA: "ʐ", Type: Fricative, Place: Retroflex, Voiced: true},
	{IPA: "ç", Type: Fricative, Place: Palatal},
	{IPA: "ʝ", Type: Fricative, Place: Palatal, Voiced: true},
	{IPA: "x", Type: Fricative, Place: Velar},
	{IPA: "ɣ", Type: Fricative, Place: Velar, Voiced: true},
	{IPA: "χ", Type: Fricative, Place: Uvular},
	{IPA: "ʁ", Type: Fricative, Place: Uvular, Voiced: true, SoundsLike: SoundsLikeR},
	{IPA: "ħ", Type: Fricative, Place: Pharyngeal},
	{IPA: "h", Type: Fricative, Place: Glottal},
	{IPA: "ɦ", Type: Fricative, Place: Glottal, Voiced: true},

	{IPA: "w", Type: Approximant, Place: Bilabial, Voiced: true},
	{IPA: "ʋ", Type: Approximant, Place: LabioDental, Voiced: true},
	{IPA: "ɹ", Type: Approximant, Place: Alveolar, Voiced: true, SoundsLike: SoundsLikeR},
	{IPA: "ɻ", Type: Approximant, Place: Retroflex, Voiced: true, SoundsLike: SoundsLikeR},
	{IPA: "j", Type: Approximant, Place: Palatal, Voiced: true},
	{IPA: "ɰ", Type: Approximant, Place: Velar, Voiced: true},

	{IPA: "ⱱ", Type: Flap, Place: LabioDental, Voiced: true},
	{IPA: "ɾ", Type: Flap, Place: Alveolar, Voiced: true, SoundsLike: SoundsLikeR},
	{IPA: "ɽ", Type: Flap, Place: Retroflex, Voiced: true, SoundsLike: SoundsLikeR},

	{IPA: "ʙ", Type: Trill, Place: Bilabial, Voiced: true},
	{IPA: "r", Type: Trill, Place: Alveolar, Voiced: true, SoundsLike: SoundsLikeR},
	{IPA: "ʀ", Type: Trill, Place: Uvular, Voiced: true, SoundsLike: SoundsLikeR},

	{IPA: "l", Type: LateralApproximant, Place: Alveolar, Voiced: true, SoundsLike: SoundsLikeL},
	{IPA: "ɫ", Type: LateralApproximant, Place: Alveolar, Voiced: true, Velarized: true, SoundsLike: SoundsLikeL},
	{IPA: "ɭ", Type: LateralApproximant, Place: Retroflex, Voiced: true, SoundsLike: SoundsLikeL},
	{IPA: "ʎ", Type: LateralApproximant, Place: Palatal, Voiced: true, SoundsLike: SoundsLikeL},
	{IPA: "ʟ", Type: LateralApproximant, Place: Velar, Voiced: true, SoundsLike: SoundsLikeL},
}
