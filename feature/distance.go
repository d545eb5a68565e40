package feature

import "math"

// columnWeights tunes how strongly each schema column contributes to the
// pairwise distance. Unlisted columns weigh 1. Place columns are damped so
// that height and manner dominate, and rounding is nearly ignored.
var columnWeights = map[string]float64{
	"vowel_place":           0.5,
	"vowel_rounded":         0.01,
	"consonant_place":       0.15,
	"consonant_voiced":      0.5,
	"consonant_sounds_like": 0.5,
}

// DistanceWeights expands the per-column weights to one weight per vector
// slot, in schema order.
func DistanceWeights() []float64 {
	weights := make([]float64, 0, VectorSize())
	for _, col := range columns {
		w, ok := columnWeights[col.name]
		if !ok {
			w = 1.0
		}
		n := 1
		if !col.ordinal {
			n = len(col.values)
		}
		for i := 0; i < n; i++ {
			weights = append(weights, w)
		}
	}
	return weights
}

// Distance is the weighted Euclidean distance between two feature vectors.
// Both vectors must have been produced by ToVector.
func Distance(a, b []float64) float64 {
	weights := DistanceWeights()

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += weights[i] * d * d
	}
	return math.Sqrt(sum)
}
