package automata

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolRanges(t *testing.T) {
	cases := []struct {
		syms   string
		expect string
	}{
		{"", ""},
		{"a", "'a'"},
		{"abc", "'a'-'c'"},
		{"abcx", "'a'-'c','x'"},
		{"\x00\x01z", `'\x00'-'\x01','z'`},
	}
	for _, tc := range cases {
		syms := make([]Symbol, len(tc.syms))
		for i := range syms {
			syms[i] = Symbol(tc.syms[i])
		}
		assert.Equal(t, tc.expect, SymbolRanges(syms))
	}
}

func TestWriteDFA(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDFA(&buf, threeThrees()))
	out := buf.String()
	assert.Contains(t, out, "DFA has 4 states, start 0")
	assert.Contains(t, out, "Accepting state(s): 3")
	assert.Contains(t, out, "STATE")
	assert.Contains(t, out, `'\x00'-'2','4'-'\x7f'`)
	assert.Contains(t, out, ">0")
	assert.Contains(t, out, "*3")
}

func TestWriteDFAAllSymbols(t *testing.T) {
	dfa := NewDFA(1)
	dfa.SetTransition(0, 'q', 0)
	var buf bytes.Buffer
	require.NoError(t, WriteDFA(&buf, dfa, WithAllSymbols()))
	out := buf.String()
	assert.Contains(t, out, "'q'")
	assert.Contains(t, out, "'~'")
	// one row per symbol plus the header rows
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), AlphabetSize+2)
}

func TestWriteNFA(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNFA(&buf, endsWithGs()))
	out := buf.String()
	assert.Contains(t, out, "NFA has 3 states")
	assert.Contains(t, out, "Accepting state(s): 2")
	assert.Contains(t, out, "{0,1}")
	assert.Contains(t, out, "'s'")

	buf.Reset()
	require.NoError(t, WriteNFA(&buf, endsWithGs(), WithAllSymbols()))
	assert.Contains(t, buf.String(), "{}")
}

func TestWriteConversion(t *testing.T) {
	conv, err := ConvertDetailed(endsWithGs(), 0)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteConversion(&buf, conv))
	out := buf.String()
	assert.Contains(t, out, "SUBSET")
	assert.Contains(t, out, "{0,2}")
	assert.Contains(t, out, "DFA has 3 states")
}
