package numerals

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberToWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want string
	}{
		{0, "صفر"},
		{1, "واحد"},
		{2, "اثنان"},
		{9, "تسعة"},
		{10, "عشرة"},
		{11, "أحد عشر"},
		{15, "خمسة عشر"},
		{19, "تسعة عشر"},
		{20, "عشرون"},
		{21, "واحد وعشرون"},
		{23, "ثلاثة وعشرون"},
		{99, "تسعة وتسعون"},
		{100, "مئة"},
		{123, "مئة وثلاثة وعشرون"},
		{200, "مئتان"},
		{215, "مئتان وخمسة عشر"},
		{999, "تسعمئة وتسعة وتسعون"},

		// Thousand tier agreement: singular, dual, plural, singular again.
		{1000, "ألف"},
		{2000, "ألفان"},
		{3000, "ثلاثة آلاف"},
		{10000, "عشرة آلاف"},
		{11000, "أحد عشر ألف"},
		{100000, "مئة ألف"},
		{2025, "ألفان وخمسة وعشرون"},
		{1001, "ألف وواحد"},

		// Million and billion tiers.
		{1000000, "مليون"},
		{2000000, "مليونان"},
		{3000000, "ثلاثة ملايين"},
		{1000000000, "مليار"},
		{2000000000, "ملياران"},
		{5000000000, "خمسة مليارات"},
		{1000000000000, "تريليون"},

		// Zero groups vanish entirely.
		{1000001, "مليون وواحد"},
		{1002003, "مليون وألفان وثلاثة"},

		// Sign handling.
		{-5, "سالب خمسة"},
		{-2025, "سالب ألفان وخمسة وعشرون"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			got, err := NumberToWords(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "n=%d", tt.n)
		})
	}
}

func TestNumberToWords_Contains(t *testing.T) {
	t.Parallel()

	got, err := NumberToWords(123)
	require.NoError(t, err)
	assert.Contains(t, got, "مئة")

	got, err = NumberToWords(-5)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "سالب"))
}

func TestNumberToWords_UnsupportedMagnitude(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{
		1_000_000_000_000_000,  // first value past the tier table
		-1_000_000_000_000_000,
		math.MaxInt64,
		math.MinInt64,
	} {
		_, err := NumberToWords(n)
		require.Error(t, err, "n=%d", n)
		assert.ErrorIs(t, err, ErrUnsupportedMagnitude)
	}

	// The largest supported magnitude still encodes.
	got, err := NumberToWords(999_999_999_999_999)
	require.NoError(t, err)
	assert.Contains(t, got, "تريليون")
}
