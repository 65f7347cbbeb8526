package catalog

import "github.com/dtromb/automata"

// EndsWithGs accepts strings ending in "gs".
func EndsWithGs() *automata.NFA {
	nfa := automata.NewNFA(3)
	nfa.SetAccepting(2, true)
	nfa.AddTransitionAll(0, 0)
	nfa.AddTransition(0, 'g', 1)
	nfa.AddTransition(1, 's', 2)
	return nfa
}

// ContainsMas accepts strings containing "mas".
func ContainsMas() *automata.NFA {
	nfa := automata.NewNFA(4)
	nfa.SetAccepting(3, true)
	nfa.AddTransitionAll(0, 0)
	nfa.AddTransition(0, 'm', 1)
	nfa.AddTransition(1, 'a', 2)
	nfa.AddTransition(2, 's', 3)
	nfa.AddTransitionAll(3, 3)
	return nfa
}

// limit is how often c occurs in "codebreaker".
var codebreakerLimits = []struct {
	c     byte
	limit int
}{
	{'a', 1},
	{'b', 1},
	{'c', 1},
	{'d', 1},
	{'k', 1},
	{'r', 2},
	{'e', 3},
}

// NotAnagramCodebreaker accepts strings that use one of the letters a, b, c,
// d, k, r or e more often than "codebreaker" does, and so cannot be anagrams
// of it. Every state loops on every symbol; state 0 guesses which letter will
// overflow and a chain counts its occurrences.
func NotAnagramCodebreaker() *automata.NFA {
	numStates := 1
	for _, l := range codebreakerLimits {
		numStates += l.limit + 1
	}
	nfa := automata.NewNFA(numStates)
	for s := 0; s < numStates; s++ {
		nfa.AddTransitionAll(s, s)
	}
	first := 1
	for _, l := range codebreakerLimits {
		prev := 0
		for i := 0; i <= l.limit; i++ {
			nfa.AddTransition(prev, automata.Symbol(l.c), first+i)
			prev = first + i
		}
		nfa.SetAccepting(prev, true)
		first = prev + 1
	}
	return nfa
}
