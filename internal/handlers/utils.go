package handlers

import (
	"regexp"
	"strconv"

	"github.com/labstack/echo/v4"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// parseIDParam parses a positive integer path parameter.
// Returns ok=false when the value is missing, non-numeric, or not positive.
func parseIDParam(c echo.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// isValidMonthKey reports whether the value has the YYYY-MM shape expected
// by the month filter. The filter itself is a string prefix match, so this
// only guards against obviously malformed input.
func isValidMonthKey(month string) bool {
	return monthKeyPattern.MatchString(month)
}
