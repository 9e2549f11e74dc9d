// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package buf

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(b *Buffer) []string {
	var out []string
	for r := range b.All() {
		out = append(out, string(r))
	}
	return out
}

func TestAppendFlattening(t *testing.T) {
	var b Buffer
	for _, id := range []string{"a", "bb", "ccc"} {
		view, err := b.Append([]byte(id))
		require.NoError(t, err)
		assert.Equal(t, id, string(view))
	}

	assert.Equal(t, []string{"a", "bb", "ccc"}, records(&b))
	assert.Equal(t, "a\x00bb\x00ccc", string(b.Bytes()))
	assert.Equal(t, 3, b.Count())
	assert.GreaterOrEqual(t, b.Cap(), b.Len()+1)
}

func TestAppendNothing(t *testing.T) {
	var b Buffer
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, records(&b))
	assert.Equal(t, 0, b.Count())
}

func TestAppendKeepsDuplicates(t *testing.T) {
	var b Buffer
	for _, id := range []string{"x", "x", "y", "x"} {
		_, err := b.Append([]byte(id))
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"x", "x", "y", "x"}, records(&b))
}

func TestNulTerminated(t *testing.T) {
	var b Buffer
	_, err := b.Append([]byte("alice"))
	require.NoError(t, err)
	assert.Equal(t, byte(0), b.data[b.Len()])

	require.NoError(t, b.Replace([]byte("bob")))
	assert.Equal(t, "bob", string(b.Bytes()))
	assert.Equal(t, byte(0), b.data[b.Len()])
	assert.Equal(t, []string{"bob"}, records(&b))
}

func TestGrowthPreservesContent(t *testing.T) {
	var b Buffer
	var want []string
	long := bytes.Repeat([]byte("z"), Chunk*3)
	for i := 0; i < 50; i++ {
		id := string(long[:i*37+1])
		want = append(want, id)
		_, err := b.Append([]byte(id))
		require.NoError(t, err)
	}
	assert.Equal(t, want, records(&b))
	assert.GreaterOrEqual(t, b.Cap(), b.Len()+1)
}

func TestGrowthStep(t *testing.T) {
	var b Buffer
	_, err := b.Append([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, Chunk, b.Cap())

	big := bytes.Repeat([]byte("q"), 5000)
	_, err = b.Append(big)
	require.NoError(t, err)
	assert.Equal(t, Chunk+5000+2, b.Cap())
}

func TestLimit(t *testing.T) {
	b := New(8)
	_, err := b.Append([]byte("abc"))
	require.NoError(t, err)
	_, err = b.Append([]byte("de"))
	require.NoError(t, err)

	_, err = b.Append([]byte("fgh"))
	require.ErrorIs(t, err, ErrAlloc)
	assert.Equal(t, []string{"abc", "de"}, records(b), "failed append must not change content")

	err = b.Replace([]byte("0123456789"))
	require.ErrorIs(t, err, ErrAlloc)
	assert.Equal(t, "abc\x00de", string(b.Bytes()))
}

func TestRelease(t *testing.T) {
	var b Buffer
	_, err := b.Append([]byte("alice"))
	require.NoError(t, err)

	b.Release()
	b.Release()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())
	assert.Empty(t, records(&b))

	_, err = b.Append([]byte("again"))
	require.NoError(t, err)
	assert.Equal(t, []string{"again"}, records(&b))
}

func TestAllStopsEarly(t *testing.T) {
	var b Buffer
	for _, id := range []string{"a", "b", "c"} {
		_, err := b.Append([]byte(id))
		require.NoError(t, err)
	}
	var seen []string
	for r := range b.All() {
		seen = append(seen, string(r))
		if len(seen) == 2 {
			break
		}
	}
	assert.True(t, slices.Equal([]string{"a", "b"}, seen))
}
