// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mblucasm/lcmp/internal/buf"
	"github.com/mblucasm/lcmp/internal/format"
)

// --- fixtures ---

func htmlExport(users ...string) string {
	var b strings.Builder
	b.WriteString("<html><head><title>Followers</title></head><body><main>")
	for _, u := range users {
		b.WriteString(`<div class="pam"><div><div><a target="_blank" href="https://www.instagram.com/`)
		b.WriteString(u)
		b.WriteString(`">`)
		b.WriteString(u)
		b.WriteString("</a></div><div>Mar 03, 2025 9:41 pm</div></div></div>\n")
	}
	b.WriteString("</main></body></html>")
	return b.String()
}

func divFragment(users ...string) string {
	var b strings.Builder
	b.WriteString(`<div class="x1dm5mii"><div>`)
	for _, u := range users {
		b.WriteString(`<span><img alt="`)
		b.WriteString(u)
		b.WriteString(`'s profile picture" crossorigin="anonymous" src="https://scontent.cdninstagram.com/v/t51.jpg"></span>`)
		b.WriteString(`<a href="/`)
		b.WriteString(u)
		b.WriteString(`/">` + u + "</a>\n")
	}
	b.WriteString("</div></div>")
	return b.String()
}

// --- plain ---

func TestPlainExtract(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"one per line", "alice\nbob\ncarol\n", []string{"alice", "bob", "carol"}},
		{"no trailing newline", "alice\nbob", []string{"alice", "bob"}},
		{"crlf and padding", "  alice \r\n\tbob\r\n", []string{"alice", "bob"}},
		{"blank lines skipped", "\n\nalice\n   \n\nbob\n\n", []string{"alice", "bob"}},
		{"engine output shape", "1 >> alice\n2 >> bob\n", []string{"alice", "bob"}},
		{"mixed shapes", "1 >> alice\nbob\n", []string{"alice", "bob"}},
		{"marker with empty tail keeps head", "bob >>\n", []string{"bob"}},
		{"marker with blank tail skipped", "bob >>   \n", nil},
		{"duplicates kept", "x\nx\ny\n", []string{"x", "x", "y"}},
		{"case sensitive", "Alice\nalice\n", []string{"Alice", "alice"}},
		{"empty document", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Strings(For(format.None), []byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- html ---

func TestHTMLExtract(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"export page", htmlExport("alice", "bob.smith", "carol_99"), []string{"alice", "bob.smith", "carol_99"}},
		{"trailing slash", `<html>href="https://instagram.com/alice/"`, []string{"alice"}},
		{"u prefix", `<html><a href="https://www.instagram.com/_u/zoe">`, []string{"zoe"}},
		{"empty anchor skipped", `<html><a href="https://www.instagram.com/">x</a>` + `<a href="https://www.instagram.com/dave">`, []string{"dave"}},
		{"no anchors", "<html><body>nothing</body></html>", nil},
		{"unterminated anchor", `<html>https://instagram.com/eve`, []string{"eve"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Strings(For(format.HTML), []byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- div ---

func TestDivExtract(t *testing.T) {
	got, err := Strings(For(format.Div), []byte(divFragment("alice", "bob", "carol")))
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, got)
}

func TestDivLanguageGuard(t *testing.T) {
	doc := []byte(`<div><img alt="Foto del perfil de alice" src="x"></div>`)

	ex := For(format.Div)
	require.ErrorIs(t, ex.Validate(doc), ErrNotEnglish)

	emitted := 0
	err := ex.Extract(doc, func([]byte) error {
		emitted++
		return nil
	})
	require.ErrorIs(t, err, ErrNotEnglish)
	assert.Zero(t, emitted, "guard must fire before any identifier is emitted")
}

func TestValidateOnlyGuardsDiv(t *testing.T) {
	assert.NoError(t, For(format.None).Validate([]byte("<div")))
	assert.NoError(t, For(format.HTML).Validate([]byte("<html>")))
}

// --- shared properties ---

func TestNoEmptyIdentifiers(t *testing.T) {
	docs := map[format.Tag][]string{
		format.None: {"\n \n\t\n", ">>\n >> \n", "a\n\n\nb", " >> \n>>x"},
		format.HTML: {`<html>.com/"`, `<html>.com/ "  .com/   "`, htmlExport("", "a", " ")},
		format.Div:  {divFragment("", " ", "b"), `<div alt="'s profile picture`},
	}
	for tag, list := range docs {
		for _, doc := range list {
			err := For(tag).Extract([]byte(doc), func(id []byte) error {
				assert.NotEmpty(t, id, "%s extractor emitted empty id from %q", tag, doc)
				assert.Equal(t, strings.TrimSpace(string(id)), string(id))
				return nil
			})
			require.NoError(t, err)
		}
	}
}

func TestExtractIsRestartable(t *testing.T) {
	doc := []byte(htmlExport("alice", "bob"))
	ex := Detect(doc)
	first, err := Strings(ex, doc)
	require.NoError(t, err)
	second, err := Strings(ex, doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, format.HTML, ex.Format())
}

func TestEmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := For(format.None).Extract([]byte("a\nb\nc\n"), func([]byte) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, calls)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, format.None, Detect([]byte("alice\n")).Format())
	assert.Equal(t, format.HTML, Detect([]byte(htmlExport("a"))).Format())
	assert.Equal(t, format.Div, Detect([]byte(divFragment("a"))).Format())
}

// --- Collect ---

func TestCollect(t *testing.T) {
	var b buf.Buffer
	type echoed struct {
		seq int
		id  string
	}
	var got []echoed
	n, err := Collect(For(format.None), []byte("alice\nbob\nalice\n"), &b, func(seq int, id []byte) error {
		got = append(got, echoed{seq, string(id)})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []echoed{{1, "alice"}, {2, "bob"}, {3, "alice"}}, got)
	assert.Equal(t, 3, b.Count())
}

func TestCollectAllocFailure(t *testing.T) {
	b := buf.New(8)
	n, err := Collect(For(format.None), []byte("alice\nbob\ncarol\n"), b, nil)
	require.ErrorIs(t, err, buf.ErrAlloc)
	assert.Equal(t, 1, n)
}
