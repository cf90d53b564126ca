package diacritics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const basmala = "بِسْمِ اللَّهِ الرَّحْمَنِ الرَّحِيمِ"

func TestRemove(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "بسم الله الرحمن الرحيم", Remove(basmala))
	assert.Equal(t, "نص بلا تشكيل", Remove("نص بلا تشكيل"))
	assert.Equal(t, "", Remove(""))
}

func TestRemoveHarakat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "كتب", RemoveHarakat("كَتَبَ"))
	// Tanween and shadda survive.
	assert.Equal(t, "كتابًا", RemoveHarakat("كتابًا"))
	assert.Equal(t, "شدّة", RemoveHarakat("شدّة"))
}

func TestRemoveTanween(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "كتابا", RemoveTanween("كتابًا"))
	// Plain harakat survive.
	assert.Equal(t, "كَتَبَ", RemoveTanween("كَتَبَ"))
}

func TestRemoveShadda(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "شدة", RemoveShadda("شدّة"))
	assert.Equal(t, "كتابًا", RemoveShadda("كتابًا"))
}

func TestHas(t *testing.T) {
	t.Parallel()

	assert.True(t, Has("بِسْمِ اللَّهِ"))
	assert.False(t, Has("بسم الله"))
	assert.False(t, Has(""))
	assert.True(t, Has("ٰ")) // superscript alef alone counts
}

func TestCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Count("بِسْمِ"))
	assert.Equal(t, 0, Count("بسم"))
}

func TestStats(t *testing.T) {
	t.Parallel()

	stats := Stats("بِسْمِ اللَّهِ")
	assert.Equal(t, 3, stats["كسرة"])
	assert.Equal(t, 1, stats["شدة"])
	assert.Equal(t, 1, stats["سكون"])
	assert.NotContains(t, stats, "ضمة")
}

func TestDiacritizedWords(t *testing.T) {
	t.Parallel()

	got := DiacritizedWords("بِسْمِ الله الرَّحْمَنِ الرحيم")
	assert.Equal(t, []string{"بِسْمِ", "الرَّحْمَنِ"}, got)

	assert.Nil(t, DiacritizedWords("بسم الله"))
}
