package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"https", "انظر https://example.com/page هنا", "انظر  هنا"},
		{"www", "زر www.example.com الآن", "زر  الآن"},
		{"ftp", "ftp://host/file تم", " تم"},
		{"none", "لا روابط", "لا روابط"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RemoveURLs(tt.in))
		})
	}
}

func TestRemoveEmails(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "راسلنا  رجاء", RemoveEmails("راسلنا info@example.org رجاء"))
}

func TestRemoveMentionsAndHashtags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "قال : مرحبا", RemoveMentions("قال @user: مرحبا"))
	// Arabic handles and tags match too.
	assert.Equal(t, "تابع ", RemoveMentions("تابع @محمد"))
	assert.Equal(t, "خبر  عاجل", RemoveHashtags("خبر #السعودية عاجل"))
}

func TestRemoveHTMLTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "نص عريض", RemoveHTMLTags("<b>نص</b> عريض"))
	assert.Equal(t, "سطر", RemoveHTMLTags(`<div class="x">سطر</div>`))
}

func TestRemovePunctuation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "مرحبا كيف حالك", RemovePunctuation("مرحبا، كيف حالك؟"))
	assert.Equal(t, "hello world", RemovePunctuation("hello, world!"))
}

func TestRemoveNonArabic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "النص  فقط 123", RemoveNonArabic("النص Arabic فقط 123"))
}

func TestRemoveEmojis(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "سعيد ", RemoveEmojis("سعيد 😊🎉"))
	assert.Equal(t, "بدون", RemoveEmojis("بدون"))
}

func TestRemoveExtraSpaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "كلمة ثم كلمة", RemoveExtraSpaces("  كلمة \t ثم\n\nكلمة "))
	assert.Equal(t, "", RemoveExtraSpaces("   "))
}

func TestReduceRepeated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"laughter", "هههههه", 2, "هه"},
		{"exact max stays", "هه", 2, "هه"},
		{"latin", "loooool", 1, "lol"},
		{"max below one", "aaa", 0, "a"},
		{"mixed runs", "ووواضح جدااا", 2, "وواضح جداا"},
		{"empty", "", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ReduceRepeated(tt.in, tt.max))
		})
	}
}

func TestClean_FullPipeline(t *testing.T) {
	t.Parallel()

	got := Clean("مرحبا   بالعالم!! @user https://example.com 😊")
	assert.Equal(t, "مرحبا بالعالم", got)
}

func TestCleanWith(t *testing.T) {
	t.Parallel()

	// Only whitespace collapsing when everything is off.
	opts := Options{}
	assert.Equal(t, "نص! @user", CleanWith("  نص!  @user ", opts))

	// KeepOnlyArabic drops latin leftovers.
	opts = DefaultOptions
	opts.KeepOnlyArabic = true
	assert.Equal(t, "النص فقط", CleanWith("النص english فقط", opts))
}
