// Package distribution buckets numeric series into histogram bins.
package distribution

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

var ErrInvalidBinning = errors.New("invalid binning")

// MaxBins bounds the bins Build may allocate for one series.
const MaxBins = 10000

// Bin counts the values falling in [From, To). The last bin of a
// distribution is closed and ends exactly at the largest value.
type Bin struct {
	From  float64
	To    float64
	Count int
}

// Build splits [0, max(series)] into ceil(max/width) bins of the given
// width. NaN, infinite and negative values are dropped. Empty bins are kept.
// A series whose values are all zero yields a single [0, 0] bin. A width
// that would need more than MaxBins bins is rejected.
func Build(series []float64, width float64) ([]Bin, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, ErrInvalidBinning
	}

	values := finite(series)
	if len(values) == 0 {
		return []Bin{}, nil
	}

	max, err := stats.Max(stats.Float64Data(values))
	if err != nil {
		return nil, err
	}

	if max/width > MaxBins {
		return nil, ErrInvalidBinning
	}
	n := int(math.Ceil(max / width))
	if n < 1 {
		n = 1
	}
	for n > 1 && float64(n-1)*width >= max {
		n--
	}
	edges := make([]float64, n+1)
	for i := 0; i < n; i++ {
		edges[i] = float64(i) * width
	}
	edges[n] = max

	return histogram(values, edges), nil
}

// BuildEdges counts values against explicit edges. Values outside
// [edges[0], edges[len-1]] are dropped.
func BuildEdges(series []float64, edges []float64) ([]Bin, error) {
	if len(edges) < 2 || !sort.Float64sAreSorted(edges) {
		return nil, ErrInvalidBinning
	}
	for _, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, ErrInvalidBinning
		}
	}

	lo, hi := edges[0], edges[len(edges)-1]
	var values []float64
	for _, v := range series {
		if !math.IsNaN(v) && v >= lo && v <= hi {
			values = append(values, v)
		}
	}
	return histogram(values, edges), nil
}

func histogram(values, edges []float64) []Bin {
	slices.Sort(values)

	// gonum bins are all right-open; nudge the last divider so the maximum
	// lands in the final bin.
	dividers := slices.Clone(edges)
	last := len(dividers) - 1
	dividers[last] = math.Nextafter(dividers[last], math.Inf(1))

	counts := stat.Histogram(nil, dividers, values, nil)

	bins := make([]Bin, len(counts))
	for i, c := range counts {
		bins[i] = Bin{From: edges[i], To: edges[i+1], Count: int(c)}
	}
	return bins
}

func finite(series []float64) []float64 {
	out := make([]float64, 0, len(series))
	for _, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Value is one enumerated bin: how many times Value occurs.
type Value struct {
	Value int64
	Count int
}

// Enumerate counts occurrences of each distinct value, ascending by value.
func Enumerate(series []int64) []Value {
	counts := make(map[int64]int)
	for _, v := range series {
		counts[v]++
	}
	out := make([]Value, 0, len(counts))
	for v, c := range counts {
		out = append(out, Value{Value: v, Count: c})
	}
	slices.SortFunc(out, func(a, b Value) int { return cmp.Compare(a.Value, b.Value) })
	return out
}
