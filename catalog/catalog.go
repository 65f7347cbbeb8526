package catalog

import (
	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/dtromb/automata"
	"github.com/dtromb/automata/envconfig"
)

var ErrUnknownAutomaton = errors.New("unknown automaton")

type Kind string

const (
	KindDFA       Kind = "dfa"
	KindNFA       Kind = "nfa"
	KindConverted Kind = "nfa->dfa"
)

// Entry names an example automaton. Build returns a fresh instance on every
// call.
type Entry struct {
	Name        string
	Description string
	Kind        Kind
	Build       func() (automata.Automaton, error)
}

var (
	entries = treemap.NewWithStringComparator()
	// demoOrder is the order the demo walks the catalog in.
	demoOrder []string
)

func dfaEntry(name, desc string, build func() *automata.DFA) Entry {
	return Entry{
		Name:        name,
		Description: desc,
		Kind:        KindDFA,
		Build: func() (automata.Automaton, error) {
			return build(), nil
		},
	}
}

func nfaEntry(name, desc string, build func() *automata.NFA) Entry {
	return Entry{
		Name:        name,
		Description: desc,
		Kind:        KindNFA,
		Build: func() (automata.Automaton, error) {
			return build(), nil
		},
	}
}

// convertedEntry builds the NFA and runs it through subset construction,
// bounded by envconfig.MaxDFAStates.
func convertedEntry(name, desc string, build func() *automata.NFA) Entry {
	return Entry{
		Name:        name + "-dfa",
		Description: desc,
		Kind:        KindConverted,
		Build: func() (automata.Automaton, error) {
			dfa, err := automata.ConvertWithLimit(build(), envconfig.MaxDFAStates)
			if err != nil {
				return nil, errors.Wrapf(err, "converting %s", name)
			}
			return dfa, nil
		},
	}
}

func register(e Entry) {
	entries.Put(e.Name, e)
	demoOrder = append(demoOrder, e.Name)
}

func init() {
	register(dfaEntry("ullman", `recognizes exactly "ullman"`, Ullman))
	register(dfaEntry("starts-with-com", `recognizes strings starting with "com"`, StartsWithCom))
	register(dfaEntry("three-threes", `recognizes strings with three consecutive "3"`, ThreeThrees))
	register(dfaEntry("even-zeros-odd-ones", "recognizes binary strings with even 0's and odd 1's", EvenZerosOddOnes))

	nfas := []struct {
		name  string
		desc  string
		build func() *automata.NFA
	}{
		{"ends-with-gs", `recognizes strings ending with "gs"`, EndsWithGs},
		{"contains-mas", `recognizes strings containing "mas"`, ContainsMas},
		{"not-anagram-codebreaker", `recognizes strings that are not anagrams of "codebreaker"`, NotAnagramCodebreaker},
	}
	for _, n := range nfas {
		register(nfaEntry(n.name, n.desc, n.build))
	}
	for _, n := range nfas {
		register(convertedEntry(n.name, n.desc, n.build))
	}
}

// Names returns every entry name in sorted order.
func Names() []string {
	keys := entries.Keys()
	res := make([]string, len(keys))
	for i, k := range keys {
		res[i] = k.(string)
	}
	return res
}

// Entries returns every entry in demo order.
func Entries() []Entry {
	res := make([]Entry, 0, len(demoOrder))
	for _, name := range demoOrder {
		e, _ := entries.Get(name)
		res = append(res, e.(Entry))
	}
	return res
}

func Lookup(name string) (Entry, error) {
	e, found := entries.Get(name)
	if !found {
		return Entry{}, errors.Wrapf(ErrUnknownAutomaton, "%q", name)
	}
	return e.(Entry), nil
}
