package phoneme

import (
	"strings"
	"testing"

	ipa "github.com/ieee0824/ipa-go"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
	}{
		{"a", KindVowel},
		{"ˈaː", KindVowel},
		{"t͡ʃ", KindConsonant},
		{"ə", KindSchwa},
		{"ɚ", KindSchwa},
		{"aʊ", KindDipthong},
		{"tʰ", KindUnknown},
	}

	for _, tt := range tests {
		ph, err := New(tt.text)
		if err != nil {
			t.Fatalf("New(%q): %v", tt.text, err)
		}
		if ph.Kind != tt.kind {
			t.Errorf("New(%q).Kind = %v, want %v", tt.text, ph.Kind, tt.kind)
		}
	}
}

func TestDipthongVowels(t *testing.T) {
	ph, err := New("aʊ")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ph.Dipthong.Vowel1.IPA != "a" || ph.Dipthong.Vowel2.IPA != "ʊ" {
		t.Errorf("Dipthong = %v/%v, want a/ʊ", ph.Dipthong.Vowel1.IPA, ph.Dipthong.Vowel2.IPA)
	}
}

func TestTextCompare(t *testing.T) {
	ph, err := New("ˈaʊ")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := ph.TextCompare(); got != "aʊ" {
		t.Errorf("TextCompare = %q, want %q", got, "aʊ")
	}

	// Stable under repeated stress reassignment.
	restressed := ph.WithStressTone(ipa.StressSecondary, "")
	if got := restressed.TextCompare(); got != "aʊ" {
		t.Errorf("TextCompare after restress = %q, want %q", got, "aʊ")
	}
	if got := restressed.Text(); got != "ˌaʊ" {
		t.Errorf("Text after restress = %q, want %q", got, "ˌaʊ")
	}
}

func TestUnknown(t *testing.T) {
	ph := NewUnknown("ʘ")
	if !ph.Unknown {
		t.Error("Unknown = false")
	}
	if ph.Text() != "ʘ" {
		t.Errorf("Text = %q, want %q", ph.Text(), "ʘ")
	}
	if ph.Kind != KindUnknown {
		t.Errorf("Kind = %v, want unknown", ph.Kind)
	}
}

func TestLoad(t *testing.T) {
	const src = `
# test inventory
aʊ cow au
k car ,q
a hat ! ˧˧ ˨˩
`
	inv, err := Load("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(inv.Phonemes) != 3 {
		t.Fatalf("len(Phonemes) = %d, want 3", len(inv.Phonemes))
	}
	if inv.Phonemes[0].Example != "cow" {
		t.Errorf("Example = %q, want %q", inv.Phonemes[0].Example, "cow")
	}
	if got := inv.IPAMap["au"]; got != "aʊ" {
		t.Errorf("IPAMap[au] = %q, want %q", got, "aʊ")
	}
	if got := inv.IPAMap["q"]; got != "k" {
		t.Errorf("IPAMap[q] = %q, want %q", got, "k")
	}
	if !inv.RawPatterns["q"] {
		t.Error("RawPatterns[q] = false, want true")
	}
	if got := inv.Phonemes[2].Tones; len(got) != 2 || got[0] != "˧˧" || got[1] != "˨˩" {
		t.Errorf("Tones = %v, want [˧˧ ˨˩]", got)
	}
}

func TestFromLanguage(t *testing.T) {
	for _, lang := range []string{"en-us", "en", "de", "pt-br", "vi"} {
		if _, err := FromLanguage(lang); err != nil {
			t.Errorf("FromLanguage(%q): %v", lang, err)
		}
	}

	_, err := FromLanguage("xx")
	if err == nil {
		t.Fatal("FromLanguage(xx): expected error")
	}
	if !strings.Contains(err.Error(), "en-us") {
		t.Errorf("error should list supported languages: %v", err)
	}
}

func TestFromLanguageNotation(t *testing.T) {
	inv, err := FromLanguage("en-us/espeak")
	if err != nil {
		t.Fatalf("FromLanguage: %v", err)
	}
	if got := inv.NativeToIPA["tS"]; got != "t͡ʃ" {
		t.Errorf("NativeToIPA[tS] = %q, want %q", got, "t͡ʃ")
	}
	if got := inv.IPAToNative["t͡ʃ"]; got != "tS" {
		t.Errorf("IPAToNative[t͡ʃ] = %q, want %q", got, "tS")
	}
}

func TestEditDistance(t *testing.T) {
	seq := func(texts ...string) []Phoneme {
		var out []Phoneme
		for _, text := range texts {
			ph, err := New(text)
			if err != nil {
				t.Fatalf("New(%q): %v", text, err)
			}
			out = append(out, ph)
		}
		return out
	}

	if d := EditDistance(seq("k", "æ", "t"), seq("k", "æ", "t")); d != 0 {
		t.Errorf("identical distance = %d, want 0", d)
	}
	if d := EditDistance(seq("k", "æ", "t"), seq("b", "æ", "t")); d != 1 {
		t.Errorf("substitution distance = %d, want 1", d)
	}
	if d := EditDistance(seq("k", "æ", "t"), nil); d != 3 {
		t.Errorf("deletion distance = %d, want 3", d)
	}
}
