package airship

import (
	"errors"
	"fmt"
	"iter"
)

var ErrDuplicateID = errors.New("airship: duplicate id")

// Airships is an ordered, id-unique collection. It is built once per frame
// and is read-only afterwards, so any number of goroutines may iterate it.
type Airships struct {
	ships []Airship
	index map[string]int
}

// NewAirships validates ships and keeps them in the given order.
func NewAirships(ships ...Airship) (*Airships, error) {
	a := &Airships{
		ships: make([]Airship, 0, len(ships)),
		index: make(map[string]int, len(ships)),
	}
	for _, s := range ships {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, ok := a.index[s.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, s.ID)
		}
		a.index[s.ID] = len(a.ships)
		a.ships = append(a.ships, s)
	}
	return a, nil
}

// Len returns the number of airships. A nil collection is empty.
func (a *Airships) Len() int {
	if a == nil {
		return 0
	}
	return len(a.ships)
}

// Get looks up an airship by id.
func (a *Airships) Get(id string) (Airship, bool) {
	if a == nil {
		return Airship{}, false
	}
	i, ok := a.index[id]
	if !ok {
		return Airship{}, false
	}
	return a.ships[i], true
}

// At returns the i'th airship in collection order.
func (a *Airships) At(i int) Airship {
	return a.ships[i]
}

// Slice returns a copy of the airships in collection order.
func (a *Airships) Slice() []Airship {
	if a == nil {
		return nil
	}
	return append([]Airship(nil), a.ships...)
}

// All yields every airship in collection order. The sequence may be
// ranged over any number of times.
func (a *Airships) All() iter.Seq[Airship] {
	return func(yield func(Airship) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(a.ships[i]) {
				return
			}
		}
	}
}

// Pair is an unordered pair of distinct airships. A precedes B in
// collection order.
type Pair struct {
	A, B Airship
}

// Key identifies the pair independent of order.
func (p Pair) Key() string {
	if p.A.ID < p.B.ID {
		return p.A.ID + "|" + p.B.ID
	}
	return p.B.ID + "|" + p.A.ID
}

// Separation is the Cartesian distance between the two positions.
func (p Pair) Separation() float64 {
	return p.A.Position.Distance(p.B.Position)
}

// PairCount is n(n-1)/2.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Pairs lazily yields every unordered pair exactly once.
func (a *Airships) Pairs() iter.Seq[Pair] {
	return a.PairsFrom(0, a.Len())
}

// PairsFrom yields the pairs whose first member has index in [lo, hi).
// Disjoint ranges yield disjoint pairs, so the full set can be split across
// workers.
func (a *Airships) PairsFrom(lo, hi int) iter.Seq[Pair] {
	lo = max(lo, 0)
	hi = min(hi, a.Len())
	return func(yield func(Pair) bool) {
		for i := lo; i < hi; i++ {
			for j := i + 1; j < len(a.ships); j++ {
				if !yield(Pair{A: a.ships[i], B: a.ships[j]}) {
					return
				}
			}
		}
	}
}

// SplitPairs partitions Pairs into at most n sequences of roughly equal
// pair count. Together they yield every pair exactly once.
func (a *Airships) SplitPairs(n int) []iter.Seq[Pair] {
	total := PairCount(a.Len())
	if n < 1 || total == 0 {
		return nil
	}
	n = min(n, total)

	var parts []iter.Seq[Pair]
	lo, acc, target := 0, 0, (total+n-1)/n
	for i := 0; i < a.Len(); i++ {
		acc += a.Len() - 1 - i
		if acc >= target || i == a.Len()-1 {
			if acc > 0 {
				parts = append(parts, a.PairsFrom(lo, i+1))
			}
			lo, acc = i+1, 0
		}
	}
	return parts
}
