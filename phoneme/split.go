package phoneme

import (
	"fmt"

	ipa "github.com/ieee0824/ipa-go"
	"github.com/ieee0824/ipa-go/phone"
)

// splitItem is one input cluster with its stress and tone stripped into
// side buffers, so a multi-cluster match can carry them onto the merged
// phoneme.
type splitItem struct {
	compare string // canonical cluster text without stress/tone
	stress  ipa.Stress
	tone    string
	skip    bool // break or intonation cluster
}

// Split tokenizes a phonetic string into this inventory's phonemes with a
// greedy longest-match scan. Allophones are rewritten to their canonical
// phoneme first; stress and tone are preserved onto the matched phoneme.
// A cluster that matches nothing is emitted as a single unknown phoneme.
func (inv *Inventory) Split(s string, opts ...phone.Option) ([]Phoneme, error) {
	s = inv.ApplyIPAMap(s)
	clusters := phone.Clusters(s, opts...)

	items := make([]splitItem, len(clusters))
	for i, cluster := range clusters {
		runes := []rune(cluster)
		if len(runes) == 1 && (ipa.IsBreak(runes[0]) || ipa.IsIntonation(runes[0])) {
			items[i].skip = true
			continue
		}

		p, err := phone.FromString(cluster)
		if err != nil {
			return nil, fmt.Errorf("cluster %q: %w", cluster, err)
		}
		items[i].stress = p.Stress
		items[i].tone = p.Tone
		p.Stress = ""
		p.Tone = ""
		items[i].compare = p.Text()
	}

	var out []Phoneme
	for i := 0; i < len(items); {
		if items[i].skip {
			i++
			continue
		}

		seq, ok := inv.matchAt(items, i)
		if !ok {
			out = append(out, NewUnknown(clusters[i]))
			i++
			continue
		}

		var stress ipa.Stress
		var tone string
		for j := range seq.clusters {
			if stress == "" {
				stress = items[i+j].stress
			}
			tone += items[i+j].tone
		}

		out = append(out, inv.Phonemes[seq.phoneme].WithStressTone(stress, tone))
		i += len(seq.clusters)
	}

	return out, nil
}

// matchAt returns the longest cluster sequence matching items at position
// i. Sequences are pre-sorted longest first, file order among equals.
func (inv *Inventory) matchAt(items []splitItem, i int) (clusterSequence, bool) {
	for _, seq := range inv.sequences {
		if i+len(seq.clusters) > len(items) {
			continue
		}
		ok := true
		for j, want := range seq.clusters {
			it := items[i+j]
			if it.skip || it.compare != want {
				ok = false
				break
			}
		}
		if ok {
			return seq, true
		}
	}
	return clusterSequence{}, false
}
