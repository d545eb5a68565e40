package accent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/ieee0824/ipa-go/internal/data"
)

// The precomputed nearest-neighbor table maps each catalog symbol to every
// other catalog symbol ordered by increasing weighted feature distance. It
// is loaded once per process on first use and read-only afterwards.
var (
	closestOnce sync.Once
	closestMap  map[string][]string
	closestErr  error
)

// Closest returns the catalog symbols nearest to the given symbol, ordered
// nearer to farther. The second return is false for symbols not in the
// table.
func Closest(symbol string) ([]string, bool, error) {
	closestOnce.Do(loadClosest)
	if closestErr != nil {
		return nil, false, closestErr
	}
	neighbors, ok := closestMap[symbol]
	return neighbors, ok, nil
}

func loadClosest() {
	raw, err := data.Distances()
	if err != nil {
		closestErr = fmt.Errorf("load distance table: %w", err)
		return
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		closestErr = fmt.Errorf("open distance table: %w", err)
		return
	}
	defer zr.Close()

	if err := json.NewDecoder(zr).Decode(&closestMap); err != nil {
		closestErr = fmt.Errorf("decode distance table: %w", err)
	}
}
