package gen

import (
	"github.com/pkg/errors"

	"setCover/internal/setcover"
)

// MaxAdversarialK bounds Adversarial so the universe stays addressable in
// memory.
const MaxAdversarialK = 24

// Adversarial builds the classic instance on which greedy set cover is off by
// a logarithmic factor.
//
// The universe {1..2^(k+1)-2} is split into two halves, F[0] and F[1], which
// together are the optimal cover. They are followed by k decoys; decoy i holds
// 2^i elements of the first half and their mirrors in the second half, so the
// decoys grow 2, 4, 8, ... and each one is just larger than what is left of
// either half. Greedy therefore picks decoys from the largest down.
func Adversarial(k int) (*setcover.Problem[int], error) {
	if k < 0 || k > MaxAdversarialK {
		return nil, errors.Errorf("k must be in [0,%d] (got %d)", MaxAdversarialK, k)
	}

	size := 1<<(k+1) - 2
	if size%2 != 0 {
		return nil, errors.Errorf("universe size %d is odd", size)
	}
	half := size / 2

	subsets := make([]setcover.Set[int], 0, k+2)
	subsets = append(subsets, setcover.Range(1, half), setcover.Range(half+1, size))

	cursor := 1
	for i := 0; i < k; i++ {
		pairs := 1 << i
		decoy := make(setcover.Set[int], 2*pairs)
		for j := 0; j < pairs; j++ {
			decoy.Add(cursor)
			decoy.Add(half + cursor)
			cursor++
		}
		subsets = append(subsets, decoy)
	}

	return &setcover.Problem[int]{
		Universe:    setcover.Range(1, size),
		Subsets:     subsets,
		OptimalSize: 2,
	}, nil
}
