package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ilyakaznacheev/cleanenv"

	ipa "github.com/ieee0824/ipa-go"
	"github.com/ieee0824/ipa-go/accent"
	"github.com/ieee0824/ipa-go/catalog"
	"github.com/ieee0824/ipa-go/espeak"
	"github.com/ieee0824/ipa-go/phone"
	"github.com/ieee0824/ipa-go/phoneme"
	"github.com/ieee0824/ipa-go/sampa"
)

type envConfig struct {
	DataDir string `env:"IPA_DATA_DIR" env-default:""`
	Debug   bool   `env:"IPA_DEBUG" env-default:"false"`
}

type cli struct {
	Debug bool `help:"Enable debug logging."`

	Print    printCmd    `cmd:"" help:"Print known IPA phones with descriptions."`
	Describe describeCmd `cmd:"" help:"Describe IPA phones."`
	Phones   phonesCmd   `cmd:"" help:"Group phones in an IPA pronunciation."`
	Phonemes phonemesCmd `cmd:"" help:"Group phones according to a language's phonemes."`
	Convert  convertCmd  `cmd:"" help:"Convert pronunciations between notations."`
	Compare  compareCmd  `cmd:"" help:"Edit distance between two pronunciations."`
	Guess    guessCmd    `cmd:"" help:"Guess a phoneme mapping between two languages."`
}

type appContext struct {
	cfg    envConfig
	logger *slog.Logger
}

func main() {
	var cfg envConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var c cli
	ctx := kong.Parse(&c,
		kong.Name("ipa"),
		kong.Description("Parse, segment, and convert IPA pronunciations."),
	)

	level := slog.LevelInfo
	if c.Debug || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := ctx.Run(&appContext{cfg: cfg, logger: logger})
	ctx.FatalIfErrorf(err)
}

// loadInventory loads a language inventory, preferring an on-disk data
// directory when configured.
func loadInventory(app *appContext, lang string) (*phoneme.Inventory, error) {
	if app.cfg.DataDir != "" {
		resolved := ipa.ResolveLanguage(lang)
		path := filepath.Join(app.cfg.DataDir, resolved, "phonemes.txt")
		app.logger.Debug("loading phonemes", "path", path)
		if _, err := os.Stat(path); err == nil {
			return phoneme.LoadFile(resolved, path)
		}
	}
	return phoneme.FromLanguage(lang)
}

// lines yields args when present, otherwise stdin lines.
func lines(args []string, fn func(string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if arg = strings.TrimSpace(arg); arg != "" {
				if err := fn(arg); err != nil {
					return err
				}
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			if err := fn(line); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

type printCmd struct {
	Language string `help:"Only print phones from a specific language or language/set."`
}

type phoneInfo struct {
	Text        string `json:"text"`
	Description string `json:"description"`
	ESpeak      string `json:"espeak"`
	Sampa       string `json:"sampa"`
}

func (p *printCmd) Run(app *appContext) error {
	allowed := map[string]bool{}
	if p.Language != "" {
		inv, err := loadInventory(app, p.Language)
		if err != nil {
			return err
		}
		for _, ph := range inv.Phonemes {
			allowed[ph.Text()] = true
		}
	}

	var symbols []string
	for s := range catalog.Vowels {
		symbols = append(symbols, s)
	}
	for s := range catalog.Consonants {
		symbols = append(symbols, s)
	}
	for s := range catalog.Schwas {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	enc := json.NewEncoder(os.Stdout)
	for _, s := range symbols {
		if len(allowed) > 0 && !allowed[s] {
			continue
		}
		info := phoneInfo{
			Text:        s,
			Description: describeSymbol(s),
			ESpeak:      espeak.FromIPA(s),
			Sampa:       sampa.FromIPA(s),
		}
		if err := enc.Encode(info); err != nil {
			return err
		}
	}
	return nil
}

func describeSymbol(s string) string {
	if v, ok := catalog.Vowels[s]; ok {
		rounded := "unrounded"
		if v.Rounded {
			rounded = "rounded"
		}
		return fmt.Sprintf("%s %s %s vowel", v.Height, v.Placement, rounded)
	}
	if c, ok := catalog.Consonants[s]; ok {
		voiced := "voiceless"
		if c.Voiced {
			voiced = "voiced"
		}
		return fmt.Sprintf("%s %s %s", voiced, c.Place, c.Type)
	}
	if sch, ok := catalog.Schwas[s]; ok {
		if sch.RColoured {
			return "r-coloured schwa"
		}
		return "schwa"
	}
	return ""
}

type describeCmd struct {
	Phone []string `arg:"" optional:"" help:"IPA phones (read from stdin if not provided)."`
}

func (d *describeCmd) Run(app *appContext) error {
	enc := json.NewEncoder(os.Stdout)
	return lines(d.Phone, func(line string) error {
		ph, err := phoneme.New(line)
		if err != nil {
			return err
		}
		return enc.Encode(map[string]any{
			"text":    ph.Text(),
			"letters": ph.Phone.Letters,
			"kind":    ph.Kind.String(),
			"stress":  string(ph.Phone.Stress),
			"long":    ph.Phone.IsLong,
			"nasal":   ph.Phone.Nasalated(),
			"tone":    ph.Phone.Tone,
		})
	})
}

type phonesCmd struct {
	Pronunciation []string `arg:"" optional:"" help:"IPA pronunciations (read from stdin if not provided)."`
	Separator     string   `default:" " help:"Separator between phones in output."`
}

func (p *phonesCmd) Run(app *appContext) error {
	return lines(p.Pronunciation, func(line string) error {
		pron, err := phone.Parse(line)
		if err != nil {
			return err
		}
		var texts []string
		for _, elem := range pron.Elements {
			if t := elem.Text(); t != "" {
				texts = append(texts, t)
			}
		}
		fmt.Println(strings.Join(texts, p.Separator))
		return nil
	})
}

type phonemesCmd struct {
	Language      string   `arg:"" help:"Language code (e.g. en-us)."`
	Pronunciation []string `arg:"" optional:"" help:"IPA pronunciations (read from stdin if not provided)."`
	PhonemesFile  string   `help:"Load phonemes from a file instead of the bundled data."`
	KeepStress    bool     `default:"true" negatable:"" help:"Keep stress marks."`
	DropTones     bool     `help:"Drop tone markings."`
	Separator     string   `default:" " help:"Separator between phonemes in output."`
}

func (p *phonemesCmd) Run(app *appContext) error {
	var inv *phoneme.Inventory
	var err error
	if p.PhonemesFile != "" {
		inv, err = phoneme.LoadFile(p.Language, p.PhonemesFile)
	} else {
		inv, err = loadInventory(app, p.Language)
	}
	if err != nil {
		return err
	}

	return lines(p.Pronunciation, func(line string) error {
		phonemes, err := inv.Split(line,
			phone.KeepStress(p.KeepStress), phone.DropTones(p.DropTones))
		if err != nil {
			return err
		}
		var texts []string
		for _, ph := range phonemes {
			if t := ph.Text(); t != "" {
				texts = append(texts, t)
			}
		}
		fmt.Println(strings.Join(texts, p.Separator))
		return nil
	})
}

type convertCmd struct {
	Src           string   `arg:"" help:"Source notation: ipa, espeak, sampa, or a language code with a notation map."`
	Dest          string   `arg:"" help:"Destination notation: ipa, espeak, sampa, or a language code with a notation map."`
	Pronunciation []string `arg:"" optional:"" help:"Pronunciations (read from stdin if not provided)."`
}

func (c *convertCmd) Run(app *appContext) error {
	src, err := c.toIPA(app)
	if err != nil {
		return err
	}
	dest, err := c.fromIPA(app)
	if err != nil {
		return err
	}

	return lines(c.Pronunciation, func(line string) error {
		out, err := src(line)
		if err != nil {
			return err
		}
		out, err = dest(out)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	})
}

func (c *convertCmd) toIPA(app *appContext) (func(string) (string, error), error) {
	switch c.Src {
	case "ipa":
		return func(s string) (string, error) { return s, nil }, nil
	case "espeak":
		return func(s string) (string, error) { return espeak.ToIPA(s), nil }, nil
	case "sampa":
		return func(s string) (string, error) { return sampa.ToIPA(s), nil }, nil
	}

	inv, err := loadInventory(app, c.Src)
	if err != nil {
		return nil, fmt.Errorf("unsupported source notation %q", c.Src)
	}
	if len(inv.NativeToIPA) == 0 {
		return nil, fmt.Errorf("language %q has no notation map", c.Src)
	}
	// Whitespace-separated native symbols, each mapped to IPA; unmapped
	// symbols pass through.
	return func(s string) (string, error) {
		var sb strings.Builder
		for _, tok := range strings.Fields(s) {
			if mapped, ok := inv.NativeToIPA[tok]; ok {
				sb.WriteString(mapped)
			} else {
				sb.WriteString(tok)
			}
		}
		return sb.String(), nil
	}, nil
}

func (c *convertCmd) fromIPA(app *appContext) (func(string) (string, error), error) {
	switch c.Dest {
	case "ipa":
		return func(s string) (string, error) { return s, nil }, nil
	case "espeak":
		return func(s string) (string, error) { return "[[" + espeak.FromIPA(s) + "]]", nil }, nil
	case "sampa":
		return func(s string) (string, error) { return sampa.FromIPA(s), nil }, nil
	}

	inv, err := loadInventory(app, c.Dest)
	if err != nil {
		return nil, fmt.Errorf("unsupported destination notation %q", c.Dest)
	}
	if len(inv.IPAToNative) == 0 {
		return nil, fmt.Errorf("language %q has no notation map", c.Dest)
	}
	return func(s string) (string, error) {
		phonemes, err := inv.Split(s)
		if err != nil {
			return "", err
		}
		var toks []string
		for _, ph := range phonemes {
			if native, ok := inv.IPAToNative[ph.Text()]; ok {
				toks = append(toks, native)
			} else {
				toks = append(toks, ph.Text())
			}
		}
		return strings.Join(toks, " "), nil
	}, nil
}

type compareCmd struct {
	Language string `arg:"" help:"Language code used to segment both pronunciations."`
	A        string `arg:"" help:"First IPA pronunciation."`
	B        string `arg:"" help:"Second IPA pronunciation."`
}

func (c *compareCmd) Run(app *appContext) error {
	inv, err := loadInventory(app, c.Language)
	if err != nil {
		return err
	}

	a, err := inv.Split(c.A)
	if err != nil {
		return err
	}
	b, err := inv.Split(c.B)
	if err != nil {
		return err
	}

	fmt.Println(phoneme.EditDistance(a, b))
	return nil
}

type guessCmd struct {
	From string `arg:"" help:"Source language code."`
	To   string `arg:"" help:"Target language code."`
}

func (g *guessCmd) Run(app *appContext) error {
	from, err := loadInventory(app, g.From)
	if err != nil {
		return err
	}
	to, err := loadInventory(app, g.To)
	if err != nil {
		return err
	}

	mapping, err := accent.GuessPhonemeMap(from, to)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(mapping)
}
