// Package data bundles the per-language phoneme files and the precomputed
// phoneme distance table.
package data

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed languages phoneme_distances.json.gz
var files embed.FS

// Phonemes returns the phoneme list file for a language (or a
// language/notation-set path such as "en-us/espeak").
func Phonemes(lang string) ([]byte, error) {
	return files.ReadFile("languages/" + lang + "/phonemes.txt")
}

// NotationMap returns the sibling native-notation mapping file for a
// language, if one is bundled.
func NotationMap(lang string) ([]byte, error) {
	return files.ReadFile("languages/" + lang + "/ipa.txt")
}

// Distances returns the compressed precomputed nearest-neighbor table.
func Distances() ([]byte, error) {
	return files.ReadFile("phoneme_distances.json.gz")
}

// Languages lists every bundled language (and language/notation-set)
// path, sorted.
func Languages() []string {
	var langs []string
	fs.WalkDir(files, "languages", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Base(p) == "phonemes.txt" {
			langs = append(langs, strings.TrimPrefix(path.Dir(p), "languages/"))
		}
		return nil
	})
	sort.Strings(langs)
	return langs
}
