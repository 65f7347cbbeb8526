package automata

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// AlphabetSize is the number of symbols every transition table is indexed over.
const AlphabetSize = 128

// NoState marks an undefined DFA transition.
const NoState = -1

type Symbol byte

var (
	ErrSymbolOutOfRange = errors.New("symbol outside alphabet")
	ErrTooManyStates    = errors.New("too many dfa states")
)

func (s Symbol) Valid() bool {
	return s < AlphabetSize
}

func (s Symbol) String() string {
	return SymbolString(s)
}

// SymbolString renders sym as a quoted, escaped character literal.
func SymbolString(sym Symbol) string {
	return strconv.QuoteRuneToASCII(rune(sym))
}

// Alphabet returns every symbol in ascending order.
func Alphabet() []Symbol {
	res := make([]Symbol, AlphabetSize)
	for i := range res {
		res[i] = Symbol(i)
	}
	return res
}

func checkInput(input string, pos int) error {
	if c := input[pos]; !Symbol(c).Valid() {
		return errors.Wrapf(ErrSymbolOutOfRange, "byte 0x%02x at position %d", c, pos)
	}
	return nil
}

// Automaton is the read side shared by DFA and NFA.
type Automaton interface {
	NumStates() int
	Start() int
	Accepting(state int) bool
	AcceptingStates() []int
	Execute(input string) (bool, error)
}

var (
	_ Automaton = (*DFA)(nil)
	_ Automaton = (*NFA)(nil)
)
