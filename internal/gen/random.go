package gen

import (
	"math/rand"

	"github.com/pkg/errors"

	"setCover/internal/setcover"
)

// Random строит случайную задачу о покрытии: X = {1..n}, от 1 до n
// подмножеств случайного размера из различных элементов X. Если после этого
// часть X осталась непокрытой, добавляется ещё одно подмножество ровно из этих
// элементов, так что задача всегда разрешима.
func Random(n int, rng *rand.Rand) (*setcover.Problem[int], error) {
	if rng == nil {
		return nil, errors.New("random source is nil")
	}
	if n < 1 {
		return nil, errors.Errorf("universe size must be >= 1 (got %d)", n)
	}

	universe := setcover.Range(1, n)
	k := 1 + rng.Intn(n)
	subsets := make([]setcover.Set[int], 0, k+1)
	for ; k > 0; k-- {
		size := 1 + rng.Intn(n)
		subset := make(setcover.Set[int], size)
		for _, v := range rng.Perm(n)[:size] {
			subset.Add(v + 1)
		}
		subsets = append(subsets, subset)
	}

	p := &setcover.Problem[int]{Universe: universe, Subsets: subsets}
	if rest := p.Uncovered(); !rest.Empty() {
		p.Subsets = append(p.Subsets, rest)
	}
	return p, nil
}
