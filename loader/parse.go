// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// parseLayoffs reads a non-negative layoff count. Anything that is not a
// base-10 integer within uint32 range yields 0.
func parseLayoffs(s string) uint32 {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}

	return uint32(n)
}

// parseYear extracts the year of a date field. A bare four-digit year is
// accepted as is; other layouts go through dateparse. Failure yields 0.
func parseYear(s string) uint32 {
	if s == "" {
		return 0
	}
	if len(s) == 4 && isDigits(s) {
		y, _ := strconv.ParseUint(s, 10, 32)
		return uint32(y)
	}

	t, err := dateparse.ParseAny(s)
	if err != nil || t.Year() <= 0 {
		return 0
	}

	return uint32(t.Year())
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// validationReason flattens validator errors into a short reason.
func validationReason(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+" is "+fe.Tag())
	}

	return strings.Join(parts, ", ")
}
