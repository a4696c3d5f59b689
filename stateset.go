package subset

import (
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

var _ Hashable = &StateSet{}

// StateSet is an immutable set of NFA states. Two sets holding the same
// states are equal and hash alike regardless of how they were built, which
// makes a StateSet usable as the identity of a DFA state.
type StateSet struct {
	bits     *bitset.BitSet
	values   []int
	hashCode uint64
}

// NewStateSet returns the set of the given states. Duplicates are absorbed
// and negative ids are ignored.
func NewStateSet(states ...int) *StateSet {
	bits := bitset.New(0)
	for _, s := range states {
		if s >= 0 {
			bits.Set(uint(s))
		}
	}
	return freezeStateSet(bits)
}

// freezeStateSet takes ownership of bits; the caller must not modify them
// afterwards.
func freezeStateSet(bits *bitset.BitSet) *StateSet {
	values := make([]int, 0, bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		values = append(values, int(i))
	}

	hashCode := uint64(len(values))
	for _, v := range values {
		hashCode += mix(v)
	}
	return &StateSet{bits: bits, values: values, hashCode: hashCode}
}

func (s *StateSet) Hash() uint64 {
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	o, ok := other.(*StateSet)
	if !ok {
		return false
	}
	if s == nil || o == nil {
		return s == o
	}
	if s.hashCode != o.hashCode {
		return false
	}
	return slices.Equal(s.values, o.values)
}

// Values returns the members in ascending order. The slice must not be
// modified.
func (s *StateSet) Values() []int {
	return s.values
}

func (s *StateSet) Len() int {
	return len(s.values)
}

func (s *StateSet) IsEmpty() bool {
	return len(s.values) == 0
}

func (s *StateSet) Contains(state int) bool {
	return state >= 0 && s.bits.Test(uint(state))
}

// Intersects reports whether s and other share at least one state.
func (s *StateSet) Intersects(other *StateSet) bool {
	return s.bits.IntersectionCardinality(other.bits) > 0
}

// IsSubsetOf reports whether every member of s is also in other.
func (s *StateSet) IsSubsetOf(other *StateSet) bool {
	return s.bits.DifferenceCardinality(other.bits) == 0
}

// String renders the set as {0 1 2}.
func (s *StateSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('}')
	return b.String()
}
