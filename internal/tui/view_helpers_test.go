package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short text unchanged", in: "молоко", max: 24, want: "молоко"},
		{name: "exact length unchanged", in: "abcd", max: 4, want: "abcd"},
		{name: "long ascii gets ellipsis", in: "abcdefgh", max: 6, want: "abc..."},
		{name: "tiny budget cuts hard", in: "abcdef", max: 2, want: "ab"},
		{name: "zero budget is a no-op", in: "abc", max: 0, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestFitText_CyrillicNotSplitMidRune(t *testing.T) {
	title := strings.Repeat("я", 40)

	got := fitText(title, 24)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("я", 21)+"...", got)
	assert.Equal(t, 24, utf8.RuneCountInString(got))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "первая", firstLine("первая\nвторая"))
	assert.Equal(t, "одна строка", firstLine("одна строка"))
}
