// Command ipa-dist regenerates the precomputed nearest-neighbor table
// embedded in internal/data. For every catalog symbol it computes the
// weighted feature-space distance to every other symbol and writes the
// neighbors in ascending order as gzipped JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/ieee0824/ipa-go/catalog"
	"github.com/ieee0824/ipa-go/feature"
)

func main() {
	output := flag.String("o", "internal/data/phoneme_distances.json.gz", "output path")
	flag.Parse()

	if err := run(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type entry struct {
	text   string
	vector []float64
}

func run(output string) error {
	entries, err := collect()
	if err != nil {
		return err
	}

	table := make(map[string][]string, len(entries))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	results := make([][]string, len(entries))
	for i := range entries {
		i := i
		g.Go(func() error {
			results[i] = neighbors(entries, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, e := range entries {
		table[e.text] = results[i]
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(table); err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close gzip: %w", err)
	}
	return f.Close()
}

// collect vectorizes every non-alias catalog symbol in table order. Table
// order matters: it breaks distance ties deterministically.
func collect() ([]entry, error) {
	var entries []entry

	add := func(text string, sym catalog.Symbol) error {
		vec, err := feature.ToVector(sym)
		if err != nil {
			return fmt.Errorf("vectorize %q: %w", text, err)
		}
		entries = append(entries, entry{text: text, vector: vec})
		return nil
	}

	for _, v := range catalog.AllVowels() {
		if v.Alias != "" {
			continue
		}
		if err := add(v.IPA, v); err != nil {
			return nil, err
		}
	}
	for _, c := range catalog.AllConsonants() {
		if c.Alias != "" {
			continue
		}
		if err := add(c.IPA, c); err != nil {
			return nil, err
		}
	}
	for _, s := range catalog.AllSchwas() {
		if s.Alias != "" {
			continue
		}
		if err := add(s.IPA, s); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// neighbors returns every other symbol ordered by ascending distance from
// entries[i], ties kept in table order.
func neighbors(entries []entry, i int) []string {
	type scored struct {
		text string
		dist float64
		idx  int
	}

	scores := make([]scored, 0, len(entries)-1)
	for j, other := range entries {
		if j == i {
			continue
		}
		scores = append(scores, scored{
			text: other.text,
			dist: feature.Distance(entries[i].vector, other.vector),
			idx:  j,
		})
	}

	sort.SliceStable(scores, func(a, b int) bool {
		if scores[a].dist != scores[b].dist {
			return scores[a].dist < scores[b].dist
		}
		return scores[a].idx < scores[b].idx
	})

	out := make([]string, len(scores))
	for k, s := range scores {
		out[k] = s.text
	}
	return out
}
