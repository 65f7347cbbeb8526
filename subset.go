package automata

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/dtromb/automata/logutil"
)

// Conversion is the result of subset construction. State i of DFA stands
// for the set of NFA states Subsets[i].
type Conversion struct {
	DFA     *DFA
	Subsets []*StateSet
}

// Convert builds a DFA accepting the same language as nfa.
func Convert(nfa *NFA) *DFA {
	conv, _ := ConvertDetailed(nfa, 0)
	return conv.DFA
}

// ConvertWithLimit is Convert, failing with ErrTooManyStates once more than
// maxStates subsets are discovered. A maxStates of zero or less means no
// limit.
func ConvertWithLimit(nfa *NFA, maxStates int) (*DFA, error) {
	conv, err := ConvertDetailed(nfa, maxStates)
	if err != nil {
		return nil, err
	}
	return conv.DFA, nil
}

// ConvertDetailed runs the subset construction and keeps the discovered
// subsets. Only subsets reachable from the start state become DFA states, in
// the order they are discovered.
func ConvertDetailed(nfa *NFA, maxStates int) (*Conversion, error) {
	index := newStateSetIndex()
	dfa := NewDFA(0)
	worklist := linkedlistqueue.New()

	discover := func(ss *StateSet) (int, error) {
		idx, added := index.Add(ss)
		if !added {
			return idx, nil
		}
		if maxStates > 0 && index.Size() > maxStates {
			return -1, errors.Wrapf(ErrTooManyStates, "limit %d exceeded", maxStates)
		}
		dfa.addState()
		worklist.Enqueue(idx)
		logutil.Trace("discovered subset", "state", idx, "subset", ss)
		return idx, nil
	}

	initial := NewStateSet(nfa.NumStates())
	if nfa.hasState(nfa.Start()) {
		initial.Insert(nfa.Start())
	}
	if _, err := discover(initial); err != nil {
		return nil, err
	}

	for !worklist.Empty() {
		v, _ := worklist.Dequeue()
		cs := v.(int)
		subset := index.Get(cs)
		for c := Symbol(0); c < AlphabetSize; c++ {
			nxt, err := discover(nfa.Step(subset, c))
			if err != nil {
				return nil, err
			}
			dfa.SetTransition(cs, c, nxt)
		}
		dfa.SetAccepting(cs, nfa.AnyAccepting(subset))
	}

	slog.Debug("subset construction finished", "nfa_states", nfa.NumStates(), "dfa_states", dfa.NumStates())
	return &Conversion{
		DFA:     dfa,
		Subsets: index.sets,
	}, nil
}
