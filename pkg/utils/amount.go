package utils

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeAmount converts a user-supplied major-unit amount string to an
// integer minor-unit amount (halalas, cents). Accepts ASCII, Arabic-Indic
// and Eastern Arabic-Indic digits plus either decimal separator; every other
// character is stripped. Rounds to the nearest minor unit and floors the
// result at zero, so unparseable or negative input yields 0.
func NormalizeAmount(raw string) int64 {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		case r == '.' || r == '٫':
			b.WriteRune('.')
		case r == '-':
			b.WriteRune('-')
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	major, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	minor := int64(math.Round(major * 100))
	if minor < 0 {
		return 0
	}
	return minor
}
