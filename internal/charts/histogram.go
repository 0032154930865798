package charts

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LifespanBins is the fixed bin count of the lifespan histogram.
const LifespanBins = 20

// Bin is a half-open interval [Lo, Hi) with its count; the last bin is closed.
type Bin struct {
	Lo, Hi float64
	Count  int
}

func (b Bin) Label() string {
	return fmt.Sprintf("%.1f-%.1f", b.Lo, b.Hi)
}

// Histogram is a binned distribution.
type Histogram struct {
	Title string
	XAxis string
	YAxis string
	Bins  []Bin
}

// Total is the number of observations across all bins.
func (h Histogram) Total() int {
	n := 0
	for _, b := range h.Bins {
		n += b.Count
	}
	return n
}

// Bucket spreads values over n equal-width bins spanning [min, max]. When
// every value is equal the bins have width 1 starting at that value.
// No values gives no bins.
func Bucket(values []float64, n int) []Bin {
	if len(values) == 0 || n <= 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		hi = lo + float64(n)
	}
	dividers := make([]float64, n+1)
	floats.Span(dividers, lo, hi)

	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lo, bins[i].Hi = dividers[i], dividers[i+1]
	}

	// the top edge is exclusive for stat.Histogram; widen it so max lands in the last bin
	dividers[n] = math.Nextafter(dividers[n], math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)
	for i, c := range counts {
		bins[i].Count = int(c)
	}
	return bins
}

// LifespanHistogram bins per-engine lifespans (max cycle).
func LifespanHistogram(lifespans []int) Histogram {
	values := make([]float64, len(lifespans))
	for i, l := range lifespans {
		values[i] = float64(l)
	}
	return Histogram{
		Title: "Engine Lifespan Distribution",
		XAxis: "Engine Lifespan (cycles)",
		YAxis: "Frequency",
		Bins:  Bucket(values, LifespanBins),
	}
}
