// SPDX-License-Identifier: MIT
// Package stats provides the numeric reductions behind the industry ledger:
// sum, mean, median, mode and population standard deviation over layoff
// counts.
//
// Policy:
//   - Every function is total. Empty input or a non-positive divisor yields 0.
//   - Inputs are never mutated; Median sorts a copy.
//   - Mode breaks ties toward the smallest value, so results do not depend on
//     map iteration order.
//
// Complexity:
//
//   - Sum, Mean, PopulationStdDev: O(n)
//   - Median:                      O(n log n)
//   - Mode:                        O(n)
package stats
