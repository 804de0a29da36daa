package setcover

import (
	"slices"

	"github.com/pkg/errors"
)

// Cover is a sub-collection of a problem's subsets, by index, in the order the
// solver picked them.
type Cover struct {
	Indices []int
}

func (c Cover) Len() int { return len(c.Indices) }

// Sorted returns the indices in ascending order.
func (c Cover) Sorted() []int { return sortedCopy(c.Indices) }

func ValidateIndices(indices []int, n int) error {
	seen := make([]bool, n)
	for i, v := range indices {
		if v < 0 || v >= n {
			return errors.Errorf("indices[%d]=%d out of range [0,%d)", i, v, n)
		}
		if seen[v] {
			return errors.Errorf("duplicate subset index %d in cover", v)
		}
		seen[v] = true
	}
	return nil
}

func sortedCopy(v []int) []int {
	out := slices.Clone(v)
	slices.Sort(out)
	return out
}
