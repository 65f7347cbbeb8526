package catalog

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtromb/automata"
	"github.com/dtromb/automata/envconfig"
)

func TestExamples(t *testing.T) {
	cases := []struct {
		name   string
		inputs map[string]bool
	}{
		{"ullman", map[string]bool{
			"ullman": true, "ullmann": false, "xullman": false, "": false, "ullma": false,
		}},
		{"starts-with-com", map[string]bool{
			"com": true, "computer": true, "co": false, "xcom": false, "": false,
		}},
		{"three-threes", map[string]bool{
			"333": true, "1333": true, "33": false, "3133": false, "a3b3c3": false,
		}},
		{"even-zeros-odd-ones", map[string]bool{
			"1": true, "001": true, "0101": false, "01011": true, "": false, "12": false, "10a": false,
		}},
		{"ends-with-gs", map[string]bool{
			"flags": true, "flag": false, "gs": true, "": false,
		}},
		{"contains-mas", map[string]bool{
			"mas": true, "christmas": true, "massive": true, "mast": true, "ma": false, "sam": false,
		}},
		{"not-anagram-codebreaker", map[string]bool{
			"codebreaker": false, "aa": true, "rrr": true, "eeee": true, "breaker": false, "banana": true,
		}},
	}
	for _, tc := range cases {
		for _, name := range []string{tc.name, tc.name + "-dfa"} {
			e, err := Lookup(name)
			if name != tc.name && errors.Is(err, ErrUnknownAutomaton) {
				// only the NFAs have converted variants
				continue
			}
			require.NoError(t, err)
			if testing.Short() && name == "not-anagram-codebreaker-dfa" {
				continue
			}
			t.Run(name, func(t *testing.T) {
				a, err := e.Build()
				require.NoError(t, err)
				for input, expect := range tc.inputs {
					ok, err := a.Execute(input)
					require.NoError(t, err)
					assert.Equal(t, expect, ok, "input %q", input)
				}
			})
		}
	}
}

func TestConvertedMatchesNFA(t *testing.T) {
	nfa := ContainsMas()
	dfa := automata.Convert(nfa)
	for _, input := range []string{"", "m", "ma", "mas", "mmas", "amsmas", "masmas", "xyz"} {
		assert.Equal(t, nfa.Accepts(input), dfa.Accepts(input), "input %q", input)
	}
}

func TestNotAnagramCodebreakerShape(t *testing.T) {
	nfa := NotAnagramCodebreaker()
	require.Equal(t, 18, nfa.NumStates())
	assert.Equal(t, []int{2, 4, 6, 8, 10, 13, 17}, nfa.AcceptingStates())
	assert.Equal(t, []int{0, 14}, nfa.Transitions(0, 'e').States())
	assert.Equal(t, []int{16, 17}, nfa.Transitions(16, 'e').States())
}

func TestLookup(t *testing.T) {
	_, err := Lookup("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAutomaton))

	e, err := Lookup("ends-with-gs-dfa")
	require.NoError(t, err)
	assert.Equal(t, KindConverted, e.Kind)
	a, err := e.Build()
	require.NoError(t, err)
	_, isDFA := a.(*automata.DFA)
	assert.True(t, isDFA)
}

func TestNames(t *testing.T) {
	names := Names()
	require.Len(t, names, 10)
	assert.IsIncreasing(t, names)
	entries := Entries()
	require.Len(t, entries, 10)
	assert.Equal(t, "ullman", entries[0].Name)
	assert.Equal(t, "not-anagram-codebreaker-dfa", entries[9].Name)
}

func TestConvertedRespectsLimit(t *testing.T) {
	prev := envconfig.MaxDFAStates
	t.Cleanup(func() { envconfig.MaxDFAStates = prev })
	envconfig.MaxDFAStates = 4

	e, err := Lookup("contains-mas-dfa")
	require.NoError(t, err)
	_, err = e.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, automata.ErrTooManyStates))
	assert.Contains(t, err.Error(), "converting contains-mas")
}
