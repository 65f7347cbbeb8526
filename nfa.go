package automata

// NFA is a nondeterministic automaton whose transition relation maps each
// state and symbol to a set of states.
type NFA struct {
	delta     [][AlphabetSize]*StateSet
	accepting []bool
	start     int
}

// NewNFA allocates an NFA with numStates states, every transition set empty
// and no accepting states. The start state is 0.
func NewNFA(numStates int) *NFA {
	if numStates < 0 {
		numStates = 0
	}
	nfa := &NFA{
		delta:     make([][AlphabetSize]*StateSet, numStates),
		accepting: make([]bool, numStates),
	}
	for i := range nfa.delta {
		for j := range nfa.delta[i] {
			nfa.delta[i][j] = NewStateSet(numStates)
		}
	}
	return nfa
}

func (nfa *NFA) NumStates() int {
	return len(nfa.delta)
}

func (nfa *NFA) Start() int {
	return nfa.start
}

// SetStart moves the start state. Out of range values are ignored.
func (nfa *NFA) SetStart(state int) {
	if nfa.hasState(state) {
		nfa.start = state
	}
}

func (nfa *NFA) hasState(state int) bool {
	return state >= 0 && state < len(nfa.delta)
}

// Transitions returns a copy of the set of targets of src on sym.
func (nfa *NFA) Transitions(src int, sym Symbol) *StateSet {
	if !nfa.hasState(src) || !sym.Valid() {
		return NewStateSet(len(nfa.delta))
	}
	return nfa.delta[src][sym].Clone()
}

// AddTransition adds dst to the targets of src on sym. Requests naming a
// state or symbol outside the automaton are ignored.
func (nfa *NFA) AddTransition(src int, sym Symbol, dst int) {
	if !nfa.hasState(src) || !nfa.hasState(dst) || !sym.Valid() {
		return
	}
	nfa.delta[src][sym].Insert(dst)
}

// AddTransitionString adds dst to the targets of src for every symbol in
// syms.
func (nfa *NFA) AddTransitionString(src int, syms string, dst int) {
	for i := 0; i < len(syms); i++ {
		nfa.AddTransition(src, Symbol(syms[i]), dst)
	}
}

// AddTransitionAll adds dst to the targets of src for every symbol.
func (nfa *NFA) AddTransitionAll(src int, dst int) {
	if !nfa.hasState(src) || !nfa.hasState(dst) {
		return
	}
	for _, ss := range nfa.delta[src] {
		ss.Insert(dst)
	}
}

// SetAccepting marks state as accepting when value is true. A false value
// never clears the flag, and out of range states are ignored.
func (nfa *NFA) SetAccepting(state int, value bool) {
	if !value || !nfa.hasState(state) {
		return
	}
	nfa.accepting[state] = true
}

func (nfa *NFA) Accepting(state int) bool {
	return nfa.hasState(state) && nfa.accepting[state]
}

func (nfa *NFA) AcceptingStates() []int {
	var res []int
	for i, acc := range nfa.accepting {
		if acc {
			res = append(res, i)
		}
	}
	return res
}

// AnyAccepting reports whether any member of active is an accepting state.
func (nfa *NFA) AnyAccepting(active *StateSet) bool {
	found := false
	active.Each(func(state int) bool {
		found = nfa.Accepting(state)
		return !found
	})
	return found
}

// Step returns the union of the targets on sym of every state in active.
func (nfa *NFA) Step(active *StateSet, sym Symbol) *StateSet {
	res := NewStateSet(len(nfa.delta))
	if !sym.Valid() {
		return res
	}
	active.Each(func(state int) bool {
		if nfa.hasState(state) {
			res.Union(nfa.delta[state][sym])
		}
		return true
	})
	return res
}

// Execute simulates the NFA over input by tracking the set of active states.
// Each byte of input is one symbol; a byte outside the alphabet fails with
// ErrSymbolOutOfRange.
func (nfa *NFA) Execute(input string) (bool, error) {
	active := NewStateSet(len(nfa.delta))
	if nfa.hasState(nfa.start) {
		active.Insert(nfa.start)
	}
	for i := 0; i < len(input); i++ {
		if err := checkInput(input, i); err != nil {
			return false, err
		}
		// An empty active set stays empty; only validation remains.
		if active.IsEmpty() {
			continue
		}
		active = nfa.Step(active, Symbol(input[i]))
	}
	return nfa.AnyAccepting(active), nil
}

// Accepts is Execute with errors treated as rejection.
func (nfa *NFA) Accepts(input string) bool {
	ok, err := nfa.Execute(input)
	return err == nil && ok
}
