package phoneme

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	ipa "github.com/ieee0824/ipa-go"
	"github.com/ieee0824/ipa-go/internal/data"
)

// Load reads a line-oriented phoneme list. Each line is
//
//	phoneme [example] [allophone...] [! tone...]
//
// "#" begins a comment. Tokens after "!" are permitted tones; tokens
// before it are allophones mapped to the phoneme's canonical text. An
// allophone starting with "," is a raw pattern matched without the
// longer-phoneme guard.
func Load(language string, r io.Reader) (*Inventory, error) {
	inv := &Inventory{
		Language:    language,
		IPAMap:      make(map[string]string),
		RawPatterns: make(map[string]bool),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		ph, err := New(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", language, lineNo, err)
		}

		rest := fields[1:]
		if len(rest) > 0 && rest[0] != "!" {
			ph.Example = rest[0]
			rest = rest[1:]
		}

		inTones := false
		for _, tok := range rest {
			switch {
			case tok == "!":
				inTones = true
			case inTones:
				ph.Tones = append(ph.Tones, tok)
			case strings.HasPrefix(tok, ","):
				pattern := ipa.NFC(strings.TrimPrefix(tok, ","))
				inv.IPAMap[pattern] = ph.Text()
				inv.RawPatterns[pattern] = true
			default:
				inv.IPAMap[ipa.NFC(tok)] = ph.Text()
			}
		}

		inv.Phonemes = append(inv.Phonemes, ph)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", language, err)
	}

	inv.Update()
	return inv, nil
}

// LoadFile reads a phoneme list from disk. A sibling ipa.txt file, when
// present, is loaded as the native-notation map.
func LoadFile(language, path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phoneme file: %w", err)
	}
	defer f.Close()

	inv, err := Load(language, f)
	if err != nil {
		return nil, err
	}

	sibling := strings.TrimSuffix(path, "phonemes.txt") + "ipa.txt"
	if content, err := os.ReadFile(sibling); err == nil {
		if err := inv.loadNotation(bytes.NewReader(content)); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// FromLanguage loads the bundled inventory for a language code. Aliases
// such as "en" and "pt-br" are resolved first. A trailing "/set" selects
// a notation set (e.g. "en-us/espeak").
func FromLanguage(lang string) (*Inventory, error) {
	resolved := ipa.ResolveLanguage(lang)

	content, err := data.Phonemes(resolved)
	if err != nil {
		return nil, fmt.Errorf("unsupported language %q (supported: %s)",
			lang, strings.Join(data.Languages(), ", "))
	}

	inv, err := Load(resolved, bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	if notation, err := data.NotationMap(resolved); err == nil {
		if err := inv.loadNotation(bytes.NewReader(notation)); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// loadNotation reads a "<native-symbol> <ipa>" mapping file into the
// inventory's notation maps.
func (inv *Inventory) loadNotation(r io.Reader) error {
	inv.NativeToIPA = make(map[string]string)
	inv.IPAToNative = make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return fmt.Errorf("%s notation line %d: want 2 fields, got %d", inv.Language, lineNo, len(fields))
		}

		native, ipaText := fields[0], ipa.NFC(fields[1])
		inv.NativeToIPA[native] = ipaText
		if _, ok := inv.IPAToNative[ipaText]; !ok {
			inv.IPAToNative[ipaText] = native
		}
	}
	return scanner.Err()
}
