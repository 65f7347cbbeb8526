package automata

// DFA is a deterministic automaton with a total transition table over the
// alphabet. Entries that were never set hold NoState.
type DFA struct {
	delta     [][AlphabetSize]int
	accepting []bool
	start     int
}

// NewDFA allocates a DFA with numStates states, every transition undefined
// and no accepting states. The start state is 0.
func NewDFA(numStates int) *DFA {
	if numStates < 0 {
		numStates = 0
	}
	dfa := &DFA{
		delta:     make([][AlphabetSize]int, 0, numStates),
		accepting: make([]bool, 0, numStates),
	}
	for i := 0; i < numStates; i++ {
		dfa.addState()
	}
	return dfa
}

func (dfa *DFA) addState() int {
	var row [AlphabetSize]int
	for i := range row {
		row[i] = NoState
	}
	dfa.delta = append(dfa.delta, row)
	dfa.accepting = append(dfa.accepting, false)
	return len(dfa.delta) - 1
}

func (dfa *DFA) NumStates() int {
	return len(dfa.delta)
}

func (dfa *DFA) Start() int {
	return dfa.start
}

// SetStart moves the start state. Out of range values are ignored.
func (dfa *DFA) SetStart(state int) {
	if dfa.hasState(state) {
		dfa.start = state
	}
}

func (dfa *DFA) hasState(state int) bool {
	return state >= 0 && state < len(dfa.delta)
}

// Transition returns the target of src on sym, or NoState.
func (dfa *DFA) Transition(src int, sym Symbol) int {
	if !dfa.hasState(src) || !sym.Valid() {
		return NoState
	}
	return dfa.delta[src][sym]
}

// SetTransition sets the target of src on sym to dst. Requests naming a state
// or symbol outside the automaton are ignored.
func (dfa *DFA) SetTransition(src int, sym Symbol, dst int) {
	if !dfa.hasState(src) || !dfa.hasState(dst) || !sym.Valid() {
		return
	}
	dfa.delta[src][sym] = dst
}

// SetTransitionString sets the transition from src to dst for every symbol in
// syms.
func (dfa *DFA) SetTransitionString(src int, syms string, dst int) {
	for i := 0; i < len(syms); i++ {
		dfa.SetTransition(src, Symbol(syms[i]), dst)
	}
}

// SetTransitionAll sets the transition from src to dst for every symbol.
func (dfa *DFA) SetTransitionAll(src int, dst int) {
	if !dfa.hasState(src) || !dfa.hasState(dst) {
		return
	}
	for i := range dfa.delta[src] {
		dfa.delta[src][i] = dst
	}
}

// SetAccepting marks state as accepting when value is true. A false value
// never clears the flag, and out of range states are ignored.
func (dfa *DFA) SetAccepting(state int, value bool) {
	if !value || !dfa.hasState(state) {
		return
	}
	dfa.accepting[state] = true
}

func (dfa *DFA) Accepting(state int) bool {
	return dfa.hasState(state) && dfa.accepting[state]
}

func (dfa *DFA) AcceptingStates() []int {
	var res []int
	for i, acc := range dfa.accepting {
		if acc {
			res = append(res, i)
		}
	}
	return res
}

// Execute runs the DFA over input. Each byte of input is one symbol; a byte
// outside the alphabet fails with ErrSymbolOutOfRange. An undefined
// transition leads to an implicit sink that never accepts.
func (dfa *DFA) Execute(input string) (bool, error) {
	cur := dfa.start
	if !dfa.hasState(cur) {
		cur = NoState
	}
	for i := 0; i < len(input); i++ {
		if err := checkInput(input, i); err != nil {
			return false, err
		}
		if cur == NoState {
			continue
		}
		cur = dfa.delta[cur][input[i]]
	}
	return cur != NoState && dfa.accepting[cur], nil
}

// Accepts is Execute with errors treated as rejection.
func (dfa *DFA) Accepts(input string) bool {
	ok, err := dfa.Execute(input)
	return err == nil && ok
}

// Reachable returns, in ascending order, every state reachable from the start
// state.
func (dfa *DFA) Reachable() []int {
	if !dfa.hasState(dfa.start) {
		return nil
	}
	seen := make([]bool, len(dfa.delta))
	seen[dfa.start] = true
	stack := []int{dfa.start}
	for len(stack) > 0 {
		cs := stack[len(stack)-1]
		stack = stack[0 : len(stack)-1]
		for _, nxt := range dfa.delta[cs] {
			if nxt != NoState && !seen[nxt] {
				seen[nxt] = true
				stack = append(stack, nxt)
			}
		}
	}
	var res []int
	for i, s := range seen {
		if s {
			res = append(res, i)
		}
	}
	return res
}
