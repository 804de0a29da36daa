package setcover

import (
	"github.com/pkg/errors"
)

type Problem[E comparable] struct {
	Universe Set[E]
	// Subsets are identified by their position; the order must not change
	// while a solve is running.
	Subsets []Set[E]
	// OptimalSize is the known optimum cover size, 0 when unknown. It is only
	// reported, never used by solvers.
	OptimalSize int
}

func NewProblem[E comparable](universe Set[E], subsets []Set[E]) (*Problem[E], error) {
	p := &Problem[E]{Universe: universe, Subsets: subsets}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Problem[E]) Validate() error {
	if p == nil {
		return errors.New("problem is nil")
	}
	if p.Universe == nil {
		return errors.New("universe is nil")
	}
	if p.OptimalSize < 0 {
		return errors.Errorf("optimal size must be >= 0 (got %d)", p.OptimalSize)
	}
	return nil
}

// Uncovered returns the elements of the universe that no subset contains.
func (p *Problem[E]) Uncovered() Set[E] {
	rest := p.Universe.Clone()
	for _, s := range p.Subsets {
		if rest.Empty() {
			break
		}
		rest.Subtract(s)
	}
	return rest
}

func (p *Problem[E]) Feasible() bool {
	return p.Uncovered().Empty()
}

// Select returns the subsets at the given indices in ascending index order.
func (p *Problem[E]) Select(indices []int) []Set[E] {
	out := make([]Set[E], 0, len(indices))
	for _, i := range sortedCopy(indices) {
		out = append(out, p.Subsets[i])
	}
	return out
}

// Stats summarises an instance for reports.
type Stats struct {
	Elements      int
	Subsets       int
	EmptySubsets  int
	LargestSubset int
	// MaxFrequency is the largest number of subsets any single element of the
	// universe belongs to.
	MaxFrequency int
}

func (p *Problem[E]) Stats() Stats {
	st := Stats{Elements: p.Universe.Len(), Subsets: len(p.Subsets)}
	freq := make(map[E]int, p.Universe.Len())
	for _, s := range p.Subsets {
		if s.Empty() {
			st.EmptySubsets++
		}
		if s.Len() > st.LargestSubset {
			st.LargestSubset = s.Len()
		}
		for e := range s {
			if !p.Universe.Has(e) {
				continue
			}
			freq[e]++
			if freq[e] > st.MaxFrequency {
				st.MaxFrequency = freq[e]
			}
		}
	}
	return st
}
