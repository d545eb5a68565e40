package phone

import (
	"reflect"
	"testing"

	ipa "github.com/ieee0824/ipa-go"
)

func TestFromString(t *testing.T) {
	p, err := FromString("ˈãː")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}

	if p.Letters != "a" {
		t.Errorf("Letters = %q, want %q", p.Letters, "a")
	}
	if p.Stress != ipa.StressPrimary {
		t.Errorf("Stress = %q, want primary", p.Stress)
	}
	if !p.IsLong {
		t.Error("IsLong = false, want true")
	}
	if !p.Diacritics[0].Nasal {
		t.Error("Diacritics[0].Nasal = false, want true")
	}

	marks := p.Suprasegmentals()
	for _, r := range []rune{ipa.PrimaryStress, ipa.LongMark} {
		if !marks[r] {
			t.Errorf("Suprasegmentals missing %q", r)
		}
	}
	if len(marks) != 2 {
		t.Errorf("Suprasegmentals = %v, want 2 marks", marks)
	}

	if got, want := p.Text(), ipa.NFC("ˈãː"); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestFromStringTie(t *testing.T) {
	p, err := FromString("d͡ʒ")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if p.Letters != "d͡ʒ" {
		t.Errorf("Letters = %q, want %q", p.Letters, "d͡ʒ")
	}
	if len(p.Diacritics) != 2 {
		t.Errorf("letter count = %d, want 2", len(p.Diacritics))
	}
	if p.Text() != "d͡ʒ" {
		t.Errorf("Text = %q, want %q", p.Text(), "d͡ʒ")
	}
}

func TestFromStringTone(t *testing.T) {
	p, err := FromString("a˨˦")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if p.Letters != "a" {
		t.Errorf("Letters = %q, want %q", p.Letters, "a")
	}
	if p.Tone != "˨˦" {
		t.Errorf("Tone = %q, want %q", p.Tone, "˨˦")
	}
	if p.Text() != "a˨˦" {
		t.Errorf("Text = %q, want %q", p.Text(), "a˨˦")
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"ˈaʊ",
		"ˌoː",
		"d͡ʒ",
		"ɐ̃w̃",
		"r̝",
		"ˈãː",
		"a˨˦",
		"j˧˧ˀ",
	}

	for _, in := range inputs {
		first, err := FromString(in)
		if err != nil {
			t.Fatalf("FromString(%q): %v", in, err)
		}
		second, err := FromString(first.Text())
		if err != nil {
			t.Fatalf("FromString(%q): %v", first.Text(), err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("round trip %q: %+v != %+v", in, first, second)
		}
		if first.Text() != second.Text() {
			t.Errorf("round trip %q: text %q != %q", in, first.Text(), second.Text())
		}
	}
}

func TestFromStringErrors(t *testing.T) {
	for _, in := range []string{"", "ˈ", "ˌ"} {
		if _, err := FromString(in); err == nil {
			t.Errorf("FromString(%q): expected error", in)
		}
	}
}
