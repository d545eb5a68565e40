package phoneme

import (
	"reflect"
	"testing"
)

func splitTexts(t *testing.T, lang, input string) []string {
	t.Helper()

	inv, err := FromLanguage(lang)
	if err != nil {
		t.Fatalf("FromLanguage(%q): %v", lang, err)
	}
	phonemes, err := inv.Split(input)
	if err != nil {
		t.Fatalf("Split(%q): %v", input, err)
	}

	var texts []string
	for _, ph := range phonemes {
		texts = append(texts, ph.Text())
	}
	return texts
}

func TestSplitEnglish(t *testing.T) {
	got := splitTexts(t, "en-us", "/dʒʌst ə kˈaʊ/")
	want := []string{"d͡ʒ", "ʌ", "s", "t", "ə", "k", "ˈaʊ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}

func TestSplitSubstringSafety(t *testing.T) {
	// "e" is an allophone of "eɪ", but a literal "eɪ" must not be
	// double-expanded.
	if got := splitTexts(t, "en-us", "eɪ"); !reflect.DeepEqual(got, []string{"eɪ"}) {
		t.Errorf("Split(eɪ) = %v, want [eɪ]", got)
	}
	if got := splitTexts(t, "en-us", "e"); !reflect.DeepEqual(got, []string{"eɪ"}) {
		t.Errorf("Split(e) = %v, want [eɪ]", got)
	}
}

func TestSplitDiacritics(t *testing.T) {
	got := splitTexts(t, "pt", "ɐ̃pliɐ̃w̃")
	want := []string{"ɐ̃", "p", "l", "i", "ɐ̃w̃"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}

func TestSplitTones(t *testing.T) {
	got := splitTexts(t, "vi-n", "a˨˦xoj˧˧")
	want := []string{"a˨˦", "x", "oj˧˧"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}

func TestSplitUnknown(t *testing.T) {
	inv, err := FromLanguage("en-us")
	if err != nil {
		t.Fatalf("FromLanguage: %v", err)
	}
	phonemes, err := inv.Split("ʘʌ")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	if len(phonemes) != 2 {
		t.Fatalf("len = %d, want 2", len(phonemes))
	}
	if !phonemes[0].Unknown || phonemes[0].Text() != "ʘ" {
		t.Errorf("phonemes[0] = %+v, want unknown ʘ", phonemes[0])
	}
	if phonemes[1].Text() != "ʌ" {
		t.Errorf("phonemes[1] = %q, want ʌ", phonemes[1].Text())
	}
}

func TestSplitSkipsBreaks(t *testing.T) {
	got := splitTexts(t, "en-us", "s|t")
	want := []string{"s", "t"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}

func TestSplitAllophoneGuard(t *testing.T) {
	inv, err := FromLanguage("en-us")
	if err != nil {
		t.Fatalf("FromLanguage: %v", err)
	}

	if got := inv.ApplyIPAMap("e"); got != "eɪ" {
		t.Errorf("ApplyIPAMap(e) = %q, want eɪ", got)
	}
	if got := inv.ApplyIPAMap("eɪ"); got != "eɪ" {
		t.Errorf("ApplyIPAMap(eɪ) = %q, want eɪ", got)
	}
	if got := inv.ApplyIPAMap("dʒ"); got != "d͡ʒ" {
		t.Errorf("ApplyIPAMap(dʒ) = %q, want d͡ʒ", got)
	}
}
