package setcover

import "github.com/pkg/errors"

// Evaluator checks candidate covers against one problem, reusing its scratch
// set between calls. Not safe for concurrent use.
type Evaluator[E comparable] struct {
	p       *Problem[E]
	scratch Set[E]
}

func NewEvaluator[E comparable](p *Problem[E]) (*Evaluator[E], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator[E]{p: p, scratch: make(Set[E], p.Universe.Len())}, nil
}

// Missing returns how many universe elements the selected subsets leave
// uncovered.
func (ev *Evaluator[E]) Missing(indices []int) (int, error) {
	if ev == nil || ev.p == nil {
		return 0, errors.New("nil evaluator")
	}
	if err := ValidateIndices(indices, len(ev.p.Subsets)); err != nil {
		return 0, err
	}

	clear(ev.scratch)
	for e := range ev.p.Universe {
		ev.scratch[e] = struct{}{}
	}
	for _, i := range indices {
		if ev.scratch.Empty() {
			break
		}
		ev.scratch.Subtract(ev.p.Subsets[i])
	}
	return ev.scratch.Len(), nil
}

// Verify fails unless the selected subsets cover the whole universe.
func (ev *Evaluator[E]) Verify(c Cover) error {
	missing, err := ev.Missing(c.Indices)
	if err != nil {
		return err
	}
	if missing > 0 {
		return errors.Errorf("cover of %d subset(s) leaves %d element(s) uncovered", c.Len(), missing)
	}
	return nil
}
