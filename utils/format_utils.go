package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatComma renders n with thousands separators, e.g. 1234567 becomes
// "1,234,567".
func FormatComma(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return sign + strings.Join(groups, ",")
}

// FormatPercent renders p with one decimal place and a percent sign.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
