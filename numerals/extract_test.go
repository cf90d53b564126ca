package numerals

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestExtractNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []*big.Int
	}{
		{
			name: "mixed systems in one sentence",
			in:   "لدي ٢٣ تفاحة و 15 برتقالة",
			want: ints(23, 15),
		},
		{
			name: "runs split by spaces are separate numbers",
			in:   "٢٣ و 15",
			want: ints(23, 15),
		},
		{
			name: "runs split by letters",
			in:   "a1b2c3",
			want: ints(1, 2, 3),
		},
		{
			name: "leading zeros parse decimally",
			in:   "رمز 007",
			want: ints(7),
		},
		{
			name: "number at end of text",
			in:   "الصفحة ٤٢",
			want: ints(42),
		},
		{
			name: "eastern arabic digits",
			in:   "سال ۱۴۰۳",
			want: ints(1403),
		},
		{
			name: "no digits",
			in:   "لا شيء هنا",
			want: nil,
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractNumbers(tt.in)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Zero(t, tt.want[i].Cmp(got[i]), "index %d: want %s, got %s", i, tt.want[i], got[i])
			}
		})
	}
}

func TestExtractNumbers_SystemIndependent(t *testing.T) {
	t.Parallel()

	// The same values in three spellings extract identically.
	western := ExtractNumbers("23 ثم 15 ثم 7")
	arabicIndic := ExtractNumbers("٢٣ ثم ١٥ ثم ٧")
	eastern := ExtractNumbers("۲۳ ثم ۱۵ ثم ۷")

	require.Len(t, western, 3)
	for i := range western {
		assert.Zero(t, western[i].Cmp(arabicIndic[i]))
		assert.Zero(t, western[i].Cmp(eastern[i]))
	}
}

func TestExtractNumbers_UnboundedMagnitude(t *testing.T) {
	t.Parallel()

	// A 40-digit run has no machine-width representation but parses
	// exactly.
	digits := strings.Repeat("9", 40)
	got := ExtractNumbers("العدد الكبير " + digits + " هنا")
	require.Len(t, got, 1)

	want, ok := new(big.Int).SetString(digits, 10)
	require.True(t, ok)
	assert.Zero(t, want.Cmp(got[0]))
}

func TestExtractNumbers_Order(t *testing.T) {
	t.Parallel()

	got := ExtractNumbers("٩ ثم 1 ثم ۵")
	require.Len(t, got, 3)
	assert.Equal(t, int64(9), got[0].Int64())
	assert.Equal(t, int64(1), got[1].Int64())
	assert.Equal(t, int64(5), got[2].Int64())
}
