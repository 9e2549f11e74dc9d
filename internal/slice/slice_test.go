// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slice

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitByte(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		delim      byte
		skip       bool
		wantPrefix string
		wantRest   string
	}{
		{"delimiter in middle", "alice\nbob", '\n', true, "alice", "bob"},
		{"delimiter kept", "alice\nbob", '\n', false, "alice", "\nbob"},
		{"delimiter absent", "alice", '\n', true, "alice", ""},
		{"delimiter first", "\nbob", '\n', true, "", "bob"},
		{"delimiter last", "alice\n", '\n', true, "alice", ""},
		{"empty input", "", '\n', true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Slice(tt.in)
			prefix := s.SplitByte(tt.delim, tt.skip)
			assert.Equal(t, tt.wantPrefix, prefix.String())
			assert.Equal(t, tt.wantRest, s.String())
		})
	}
}

func TestSplitByteRoundTrip(t *testing.T) {
	inputs := []string{
		"", "a", "\n", "a\nb", "a\n\nb\n", "no delimiter here", "\n\n\n", ">>x\n",
	}
	for _, in := range inputs {
		for _, skip := range []bool{true, false} {
			s := Slice(in)
			prefix := s.SplitByte('\n', skip)
			var got []byte
			got = append(got, prefix...)
			if skip && len(prefix) < len(in) {
				got = append(got, '\n')
			}
			got = append(got, s...)
			assert.Equal(t, in, string(got), "input %q skip=%v", in, skip)
		}
	}
}

func TestSplitSub(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		needle     string
		skip       bool
		wantPrefix string
		wantRest   string
	}{
		{"marker present", "1 >> alice", ">>", true, "1 ", " alice"},
		{"marker kept", "1 >> alice", ">>", false, "1 ", ">> alice"},
		{"marker absent", "alice", ">>", true, "alice", ""},
		{"marker at end", "alice>>", ">>", true, "alice", ""},
		{"anchor skip", `href="https://www.instagram.com/bob"`, ".com/", true, `href="https://www.instagram`, `bob"`},
		{"needle longer than input", "ab", "abc", true, "ab", ""},
		{"empty input", "", ".com/", true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Slice(tt.in)
			prefix := s.SplitSub(Of(tt.needle), tt.skip)
			assert.Equal(t, tt.wantPrefix, prefix.String())
			assert.Equal(t, tt.wantRest, s.String())
		})
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		hay, needle string
		idx         int
		ok          bool
	}{
		{"hello world", "world", 6, true},
		{"hello world", "o", 4, true},
		{"hello", "", 0, true},
		{"", "x", 0, false},
		{"aaab", "aab", 1, true},
		{"abc", "abcd", 0, false},
		{"alt=\"x's profile picture\"", "'s profile picture", 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.hay+"/"+tt.needle, func(t *testing.T) {
			idx, ok := Slice(tt.hay).Find(Of(tt.needle))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.idx, idx)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  alice  ", "alice"},
		{"\t\r\nbob\r\n", "bob"},
		{"   ", ""},
		{"", ""},
		{"a b", "a b"},
		{"\v\fcarol\f", "carol"},
	}
	for _, tt := range tests {
		got := Slice(tt.in).Trim()
		assert.Equal(t, tt.want, got.String(), "trim %q", tt.in)
		assert.Equal(t, len(tt.want), got.Len())
	}
}

func TestEqualAndPrefix(t *testing.T) {
	assert.True(t, Slice("abc").Equal(Slice("abc")))
	assert.False(t, Slice("abc").Equal(Slice("abd")))
	assert.False(t, Slice("abc").Equal(Slice("ab")))
	assert.True(t, Slice(nil).Equal(Slice("")))

	assert.True(t, Slice("<html><body>").HasPrefix(Of("<html>")))
	assert.False(t, Slice("<htm").HasPrefix(Of("<html>")))
	assert.True(t, Slice("x").HasPrefix(nil))
}

func TestSplitDoesNotCopy(t *testing.T) {
	backing := []byte("alice\nbob")
	s := Slice(backing)
	prefix := s.SplitByte('\n', true)
	backing[0] = 'A'
	backing[6] = 'B'
	assert.Equal(t, "Alice", prefix.String())
	assert.Equal(t, "Bob", s.String())
	assert.True(t, bytes.Equal(backing[6:], s))
}
