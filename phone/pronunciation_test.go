package phone

import (
	"reflect"
	"testing"

	ipa "github.com/ieee0824/ipa-go"
)

func phoneTexts(p Pronunciation) []string {
	var texts []string
	for _, ph := range p.Phones() {
		texts = append(texts, ph.Text())
	}
	return texts
}

func TestParse(t *testing.T) {
	const in = "↗ˈjɛs|ˈt͡ʃuːz#↘aɪpiːeɪ‖"

	pron, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantPhones := []string{
		"ˈj", "ɛ", "s",
		"ˈt͡ʃ", "uː", "z",
		"a", "ɪ", "p", "iː", "e", "ɪ",
	}
	if got := phoneTexts(pron); !reflect.DeepEqual(got, wantPhones) {
		t.Errorf("phones = %v, want %v", got, wantPhones)
	}

	wantBreaks := []Break{
		{Type: ipa.BreakMinor},
		{Type: ipa.BreakWord},
		{Type: ipa.BreakMajor},
	}
	if got := pron.Breaks(); !reflect.DeepEqual(got, wantBreaks) {
		t.Errorf("breaks = %v, want %v", got, wantBreaks)
	}

	wantIntonations := []Intonation{{Rising: true}, {Rising: false}}
	if got := pron.Intonations(); !reflect.DeepEqual(got, wantIntonations) {
		t.Errorf("intonations = %v, want %v", got, wantIntonations)
	}

	if got, want := pron.Text(), ipa.NFC(in); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestParseTones(t *testing.T) {
	pron, err := Parse("a˨˦xoj˧˧")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"a˨˦", "x", "o", "j˧˧"}
	if got := phoneTexts(pron); !reflect.DeepEqual(got, want) {
		t.Errorf("phones = %v, want %v", got, want)
	}
}

func TestParseDropTones(t *testing.T) {
	pron, err := Parse("a˨˦xoj˧˧", DropTones(true))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"a", "x", "o", "j"}
	if got := phoneTexts(pron); !reflect.DeepEqual(got, want) {
		t.Errorf("phones = %v, want %v", got, want)
	}
}

func TestParseDropStress(t *testing.T) {
	pron, err := Parse("ˈjɛs", KeepStress(false))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"j", "ɛ", "s"}
	if got := phoneTexts(pron); !reflect.DeepEqual(got, want) {
		t.Errorf("phones = %v, want %v", got, want)
	}
}

func TestParseDropTies(t *testing.T) {
	pron, err := Parse("t͡ʃuːz", KeepTies(false))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"t", "ʃ", "uː", "z"}
	if got := phoneTexts(pron); !reflect.DeepEqual(got, want) {
		t.Errorf("phones = %v, want %v", got, want)
	}
}

func TestParseDropsWhitespaceAndBrackets(t *testing.T) {
	pron, err := Parse("/dʒʌst ə kaʊ/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"d", "ʒ", "ʌ", "s", "t", "ə", "k", "a", "ʊ"}
	if got := phoneTexts(pron); !reflect.DeepEqual(got, want) {
		t.Errorf("phones = %v, want %v", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"↗ˈjɛs|ˈt͡ʃuːz#↘aɪpiːeɪ‖",
		"ɐ̃pliɐ̃w̃",
		"a˨˦xoj˧˧",
	}

	for _, in := range inputs {
		first, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		second, err := Parse(first.Text())
		if err != nil {
			t.Fatalf("Parse(%q): %v", first.Text(), err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("round trip %q: %v != %v", in, first, second)
		}
	}
}
