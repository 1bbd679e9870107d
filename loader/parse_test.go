// SPDX-License-Identifier: MIT

package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLayoffs(t *testing.T) {
	tests := map[string]uint32{
		"":           0,
		"120":        120,
		"0":          0,
		"-5":         0,
		"12.5":       0,
		"abc":        0,
		"4294967295": 4294967295,
		"4294967296": 0,
		"1,000":      0,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLayoffs(in), "input %q", in)
	}
}

func TestParseYear(t *testing.T) {
	tests := map[string]uint32{
		"":                     0,
		"2020":                 2020,
		"2023-01-05":           2023,
		"1/5/2023":             2023,
		"2022-11-09T00:00:00Z": 2022,
		"Jan 3, 2024":          2024,
		"not a date":           0,
		"20x1":                 0,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseYear(in), "input %q", in)
	}
}
