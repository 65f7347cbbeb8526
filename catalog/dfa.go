package catalog

import "github.com/dtromb/automata"

// Ullman accepts exactly the string "ullman".
func Ullman() *automata.DFA {
	dfa := automata.NewDFA(8)
	dfa.SetAccepting(6, true)
	for i, c := range "ullman" {
		dfa.SetTransitionAll(i, 7)
		dfa.SetTransition(i, automata.Symbol(c), i+1)
	}
	dfa.SetTransitionAll(6, 7)
	dfa.SetTransitionAll(7, 7)
	return dfa
}

// StartsWithCom accepts strings beginning with "com".
func StartsWithCom() *automata.DFA {
	dfa := automata.NewDFA(5)
	dfa.SetAccepting(3, true)
	for i, c := range "com" {
		dfa.SetTransitionAll(i, 4)
		dfa.SetTransition(i, automata.Symbol(c), i+1)
	}
	dfa.SetTransitionAll(3, 3)
	dfa.SetTransitionAll(4, 4)
	return dfa
}

// ThreeThrees accepts strings containing three consecutive '3's.
func ThreeThrees() *automata.DFA {
	dfa := automata.NewDFA(4)
	dfa.SetAccepting(3, true)
	for i := 0; i < 3; i++ {
		dfa.SetTransitionAll(i, 0)
		dfa.SetTransition(i, '3', i+1)
	}
	dfa.SetTransitionAll(3, 3)
	return dfa
}

// EvenZerosOddOnes accepts binary strings with an even number of '0's and an
// odd number of '1's. Any other symbol traps in state 4.
//
// States track parity: 0 (even, even), 1 (odd, even), 2 (even, odd),
// 3 (odd, odd).
func EvenZerosOddOnes() *automata.DFA {
	dfa := automata.NewDFA(5)
	dfa.SetAccepting(2, true)
	next := [4][2]int{
		{1, 2},
		{0, 3},
		{3, 0},
		{2, 1},
	}
	for s, tx := range next {
		dfa.SetTransitionAll(s, 4)
		dfa.SetTransition(s, '0', tx[0])
		dfa.SetTransition(s, '1', tx[1])
	}
	dfa.SetTransitionAll(4, 4)
	return dfa
}
