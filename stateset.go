package automata

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// StateSet is a set of automaton state indices backed by a bit vector.
// The zero value is not usable; use NewStateSet.
type StateSet struct {
	bits *bitset.BitSet
}

// NewStateSet returns an empty set sized for states in [0, capacityHint).
// Larger states may still be inserted; the set grows as needed.
func NewStateSet(capacityHint int) *StateSet {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &StateSet{bits: bitset.New(uint(capacityHint))}
}

// StateSetOf builds a set holding the given states.
func StateSetOf(states ...int) *StateSet {
	max := 0
	for _, s := range states {
		if s >= max {
			max = s + 1
		}
	}
	ss := NewStateSet(max)
	for _, s := range states {
		ss.Insert(s)
	}
	return ss
}

func (ss *StateSet) Insert(state int) {
	if state < 0 {
		return
	}
	ss.bits.Set(uint(state))
}

func (ss *StateSet) Contains(state int) bool {
	if state < 0 {
		return false
	}
	return ss.bits.Test(uint(state))
}

// Union adds every member of other to ss.
func (ss *StateSet) Union(other *StateSet) {
	if other == nil {
		return
	}
	ss.bits.InPlaceUnion(other.bits)
}

func (ss *StateSet) Len() int {
	return int(ss.bits.Count())
}

func (ss *StateSet) IsEmpty() bool {
	return ss.bits.Count() == 0
}

func (ss *StateSet) Clone() *StateSet {
	return &StateSet{bits: ss.bits.Clone()}
}

// Each calls fn for every member in ascending order until fn returns false.
func (ss *StateSet) Each(fn func(state int) bool) {
	for i, ok := ss.bits.NextSet(0); ok; i, ok = ss.bits.NextSet(i + 1) {
		if !fn(int(i)) {
			return
		}
	}
}

// States returns the members in ascending order.
func (ss *StateSet) States() []int {
	res := make([]int, 0, ss.Len())
	ss.Each(func(state int) bool {
		res = append(res, state)
		return true
	})
	return res
}

// Equals reports whether v is a *StateSet with the same members. The bit
// vectors may have different lengths.
func (ss *StateSet) Equals(v interface{}) bool {
	other, ok := v.(*StateSet)
	if !ok || other == nil {
		return false
	}
	if ss == other {
		return true
	}
	return ss.bits.Count() == other.bits.Count() && ss.bits.IsSuperSet(other.bits)
}

// HashCode folds the members, in ascending order, into a rotate-xor hash.
// Equal sets always hash equal.
func (ss *StateSet) HashCode() uint32 {
	var hc uint32
	ss.Each(func(state int) bool {
		hc = (hc << 11) | (hc >> 21)
		hc ^= uint32(state)
		return true
	})
	return hc
}

func (ss *StateSet) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	first := true
	ss.Each(func(state int) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteString(strconv.Itoa(state))
		return true
	})
	buf.WriteByte('}')
	return buf.String()
}
