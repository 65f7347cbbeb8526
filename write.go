package automata

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

type writeOptions struct {
	allSymbols bool
	subsets    []*StateSet
}

type WriteOption func(*writeOptions)

// WithAllSymbols lists every symbol on its own row, including undefined and
// empty transitions, instead of grouping symbols by target.
func WithAllSymbols() WriteOption {
	return func(o *writeOptions) {
		o.allSymbols = true
	}
}

func withSubsets(subsets []*StateSet) WriteOption {
	return func(o *writeOptions) {
		o.subsets = subsets
	}
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetRowLine(false)
	return table
}

func stateLabel(a Automaton, state int) string {
	label := strconv.Itoa(state)
	if a.Accepting(state) {
		label = "*" + label
	}
	if state == a.Start() {
		label = ">" + label
	}
	return label
}

func writeSummary(w io.Writer, kind string, a Automaton) error {
	accepting := a.AcceptingStates()
	strs := make([]string, len(accepting))
	for i, s := range accepting {
		strs[i] = strconv.Itoa(s)
	}
	_, err := fmt.Fprintf(w, "%s has %d states, start %d\nAccepting state(s): %s\n",
		kind, a.NumStates(), a.Start(), strings.Join(strs, " "))
	return err
}

// WriteDFA renders the transition table of dfa.
func WriteDFA(w io.Writer, dfa *DFA, opts ...WriteOption) error {
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := writeSummary(w, "DFA", dfa); err != nil {
		return err
	}
	header := []string{"STATE", "ON", "NEXT"}
	if o.subsets != nil {
		header = []string{"STATE", "SUBSET", "ON", "NEXT"}
	}
	table := newTable(w, header)
	for src := 0; src < dfa.NumStates(); src++ {
		prefix := []string{stateLabel(dfa, src)}
		if o.subsets != nil && src < len(o.subsets) {
			prefix = append(prefix, o.subsets[src].String())
		}
		if o.allSymbols {
			for c := Symbol(0); c < AlphabetSize; c++ {
				nxt := "-"
				if dst := dfa.Transition(src, c); dst != NoState {
					nxt = strconv.Itoa(dst)
				}
				table.Append(append(prefix, SymbolString(c), nxt))
			}
			continue
		}
		targets, order := groupTargets(func(c Symbol) (string, bool) {
			dst := dfa.Transition(src, c)
			return strconv.Itoa(dst), dst != NoState
		})
		for _, nxt := range order {
			table.Append(append(prefix, SymbolRanges(targets[nxt]), nxt))
		}
	}
	table.Render()
	return nil
}

// WriteNFA renders the transition relation of nfa.
func WriteNFA(w io.Writer, nfa *NFA, opts ...WriteOption) error {
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := writeSummary(w, "NFA", nfa); err != nil {
		return err
	}
	table := newTable(w, []string{"STATE", "ON", "NEXT"})
	for src := 0; src < nfa.NumStates(); src++ {
		label := stateLabel(nfa, src)
		if o.allSymbols {
			for c := Symbol(0); c < AlphabetSize; c++ {
				table.Append([]string{label, SymbolString(c), nfa.Transitions(src, c).String()})
			}
			continue
		}
		targets, order := groupTargets(func(c Symbol) (string, bool) {
			ss := nfa.Transitions(src, c)
			return ss.String(), !ss.IsEmpty()
		})
		for _, nxt := range order {
			table.Append([]string{label, SymbolRanges(targets[nxt]), nxt})
		}
	}
	table.Render()
	return nil
}

// WriteConversion renders the converted DFA alongside the NFA subset each of
// its states stands for.
func WriteConversion(w io.Writer, conv *Conversion, opts ...WriteOption) error {
	return WriteDFA(w, conv.DFA, append(opts, withSubsets(conv.Subsets))...)
}

// groupTargets collects the symbols leading to each target, keeping targets
// in the order of their first symbol.
func groupTargets(lookup func(c Symbol) (string, bool)) (map[string][]Symbol, []string) {
	targets := make(map[string][]Symbol)
	var order []string
	for c := Symbol(0); c < AlphabetSize; c++ {
		nxt, ok := lookup(c)
		if !ok {
			continue
		}
		if _, has := targets[nxt]; !has {
			order = append(order, nxt)
		}
		targets[nxt] = append(targets[nxt], c)
	}
	return targets, order
}

// SymbolRanges renders an ascending list of symbols as comma separated
// literals and inclusive ranges, e.g. 'a'-'f','x'.
func SymbolRanges(syms []Symbol) string {
	var buf strings.Builder
	for i := 0; i < len(syms); {
		j := i
		for j+1 < len(syms) && syms[j+1] == syms[j]+1 {
			j++
		}
		if buf.Len() > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(SymbolString(syms[i]))
		if j > i {
			buf.WriteByte('-')
			buf.WriteString(SymbolString(syms[j]))
		}
		i = j + 1
	}
	return buf.String()
}
