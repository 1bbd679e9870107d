// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"slices"
)

// Sum returns the total of values as uint64 so large industries cannot
// overflow a uint32 accumulator.
func Sum(values []uint32) uint64 {
	var s uint64
	for _, v := range values {
		s += uint64(v)
	}

	return s
}

// Mean returns sum/n, or 0 when n <= 0.
func Mean(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}

	return sum / float64(n)
}

// Median returns the middle value of values in ascending order. For an even
// count it is the arithmetic mean of the two middle values. Empty input → 0.
//
// Complexity: Time O(n log n), Space O(n) for the sorted copy.
func Median(values []uint32) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := n / 2
	if n%2 == 1 {
		return float64(sorted[mid])
	}

	return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2
}

// Mode returns the most frequent value. Ties go to the smallest value.
// Empty input → 0.
func Mode(values []uint32) uint32 {
	if len(values) == 0 {
		return 0
	}

	freq := make(map[uint32]int, len(values))
	for _, v := range values {
		freq[v]++
	}

	var mode uint32
	best := 0
	for v, c := range freq {
		if c > best || (c == best && v < mode) {
			mode, best = v, c
		}
	}

	return mode
}

// PopulationStdDev returns the population standard deviation of values using
// n as the divisor for both the mean and the variance.
//
// n is passed separately because callers may divide by a population larger
// than the sample (members without a known value still count). n <= 0 → 0.
//
// Complexity: Time O(len(values)), Space O(1).
func PopulationStdDev(values []uint32, n int) float64 {
	if n <= 0 {
		return 0
	}

	// Stage 1: mean over the full population.
	mean := Mean(float64(Sum(values)), n)

	// Stage 2: summed squared deviations of the known values.
	var sq, d float64
	for _, v := range values {
		d = float64(v) - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(n))
}
