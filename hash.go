package automata

type Hashable interface {
	Equals(v interface{}) bool
	HashCode() uint32
}

var _ Hashable = (*StateSet)(nil)

// stateSetIndex assigns each distinct state set the position it was first
// added at. Lookups hash into a bucket and resolve collisions with Equals.
type stateSetIndex struct {
	buckets map[uint32][]int
	sets    []*StateSet
}

func newStateSetIndex() *stateSetIndex {
	return &stateSetIndex{
		buckets: make(map[uint32][]int),
	}
}

func (si *stateSetIndex) Size() int {
	return len(si.sets)
}

func (si *stateSetIndex) Get(idx int) *StateSet {
	return si.sets[idx]
}

func (si *stateSetIndex) Has(ss *StateSet) (int, bool) {
	m, has := si.buckets[ss.HashCode()]
	if !has {
		return -1, false
	}
	for _, idx := range m {
		if si.sets[idx].Equals(ss) {
			return idx, true
		}
	}
	return -1, false
}

// Add stores ss if no equal set is present and returns its position along
// with whether it was newly added.
func (si *stateSetIndex) Add(ss *StateSet) (int, bool) {
	if idx, has := si.Has(ss); has {
		return idx, false
	}
	idx := len(si.sets)
	si.sets = append(si.sets, ss)
	hc := ss.HashCode()
	si.buckets[hc] = append(si.buckets[hc], idx)
	return idx, true
}
