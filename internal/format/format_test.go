// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Tag
	}{
		{"html export", "<html><head></head><body>...</body></html>", HTML},
		{"div fragment", `<div class="x"><img alt="bob's profile picture"></div>`, Div},
		{"bare div", "<div", Div},
		{"plain list", "alice\nbob\n", None},
		{"empty", "", None},
		{"html prefix truncated", "<html", None},
		{"leading whitespace is plain", "  <html>", None},
		{"uppercase is plain", "<HTML>", None},
		{"divider word", "<dive>", Div},
		{"engine output", "1 >> alice\n2 >> bob\n", None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect([]byte(tt.doc)))
		})
	}
}

func TestDetectExclusive(t *testing.T) {
	tails := []string{"", "<div", "<html>", "\nalice", "'s profile picture"}
	for _, tail := range tails {
		assert.Equal(t, HTML, Detect([]byte(PrefixHTML+tail)), "html + %q", tail)
		assert.Equal(t, Div, Detect([]byte(PrefixDiv+tail)), "div + %q", tail)
	}
}

func TestTagStrings(t *testing.T) {
	assert.Equal(t, "text", None.String())
	assert.Equal(t, "html", HTML.String())
	assert.Equal(t, "div", Div.String())
	assert.Equal(t, "unknown", Tag(42).String())

	assert.Equal(t, "", None.Prefix())
	assert.Equal(t, "<html>", HTML.Prefix())
	assert.Equal(t, "<div", Div.Prefix())
}
