// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/layoffgraph/stats"
)

const eps = 1e-9

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(0), stats.Sum(nil))
	assert.Equal(t, uint64(600), stats.Sum([]uint32{100, 200, 300}))
	assert.Equal(t, uint64(2*math.MaxUint32), stats.Sum([]uint32{math.MaxUint32, math.MaxUint32}))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, stats.Mean(10, 0))
	assert.Equal(t, 0.0, stats.Mean(10, -1))
	assert.InDelta(t, 2.5, stats.Mean(10, 4), eps)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []uint32
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []uint32{7}, 7},
		{"odd", []uint32{100, 200, 300}, 200},
		{"even", []uint32{100, 200}, 150},
		{"unsorted", []uint32{300, 100, 200, 400}, 250},
		{"even fractional", []uint32{1, 2}, 1.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, stats.Median(tc.values), eps)
		})
	}
}

func TestMedian_DoesNotMutate(t *testing.T) {
	in := []uint32{3, 1, 2}
	_ = stats.Median(in)
	assert.Equal(t, []uint32{3, 1, 2}, in)
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []uint32
		want   uint32
	}{
		{"empty", nil, 0},
		{"single", []uint32{9}, 9},
		{"clear winner", []uint32{50, 50, 75}, 50},
		{"tie smallest wins", []uint32{75, 50, 75, 50}, 50},
		{"all distinct", []uint32{30, 10, 20}, 10},
		{"zero counts", []uint32{0, 0, 5}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stats.Mode(tc.values))
		})
	}
}

func TestPopulationStdDev(t *testing.T) {
	tests := []struct {
		name   string
		values []uint32
		n      int
		want   float64
	}{
		{"zero population", nil, 0, 0},
		{"negative population", []uint32{1}, -3, 0},
		{"constant", []uint32{5, 5, 5}, 3, 0},
		{"ten twenty thirty", []uint32{10, 20, 30}, 3, math.Sqrt(200.0 / 3)},
		// mean = 30/3 = 10; known deviations 0 and 10.
		{"missing member counts", []uint32{10, 20}, 3, math.Sqrt((0.0 + 100.0) / 3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, stats.PopulationStdDev(tc.values, tc.n), eps)
		})
	}
	assert.InDelta(t, 8.16, stats.PopulationStdDev([]uint32{10, 20, 30}, 3), 0.01)
}
