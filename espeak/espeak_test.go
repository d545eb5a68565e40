package espeak

import "testing"

func TestFromIPA(t *testing.T) {
	tests := []struct {
		ipa  string
		want string
	}{
		{"ˈjɛs", "'jEs"},
		{"həloʊ", "h@loU"},
		{"t͡ʃuːz", "tSu:z"},
		{"ɛ̃", "E~"},
		{"|", "_::"},
		{"‖", "_::_::"},
	}

	for _, tt := range tests {
		if got := FromIPA(tt.ipa); got != tt.want {
			t.Errorf("FromIPA(%q) = %q, want %q", tt.ipa, got, tt.want)
		}
	}
}

func TestToIPA(t *testing.T) {
	tests := []struct {
		espeak string
		want   string
	}{
		{"'jEs", "ˈjɛs"},
		{"[[u:]]", "uː"},
		{"T", "θ"},
	}

	for _, tt := range tests {
		if got := ToIPA(tt.espeak); got != tt.want {
			t.Errorf("ToIPA(%q) = %q, want %q", tt.espeak, got, tt.want)
		}
	}
}

func TestUnmappedPassThrough(t *testing.T) {
	if got := FromIPA("ˈjɛs?"); got != "'jEs?" {
		t.Errorf("FromIPA = %q, want %q", got, "'jEs?")
	}
}
