package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int64
	}{
		{"plain integer", "12", 1200},
		{"decimal", "12.50", 1250},
		{"arabic indic digits", "١٢.٥٠", 1250},
		{"eastern arabic digits", "۱۲۰", 12000},
		{"arabic decimal separator", "٩٩٫٩٩", 9999},
		{"currency noise stripped", "SAR 12.50", 1250},
		{"thousands noise stripped", "1,250", 125000},
		{"rounding up", "0.005", 1},
		{"negative floors to zero", "-5", 0},
		{"garbage", "abc", 0},
		{"empty", "", 0},
		{"separator only", ".", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeAmount(tc.in))
		})
	}
}
