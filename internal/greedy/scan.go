package greedy

import (
	"context"

	"golang.org/x/sync/errgroup"

	"setCover/internal/setcover"
)

// pick: кандидат на очередной шаг: индекс подмножества и число
// непокрытых элементов, которые оно покроет.
type pick struct {
	index int
	gain  int
}

var noPick = pick{index: -1}

func (p pick) better(o pick) bool {
	if o.index < 0 {
		return false
	}
	return p.index < 0 || o.gain > p.gain
}

// bestIn просматривает подмножества [lo, hi) по возрастанию индекса.
// Замена происходит только при строго большем приросте, поэтому при равенстве
// остаётся первый встреченный индекс.
func bestIn[E comparable](uncovered setcover.Set[E], subsets []setcover.Set[E], chosen []bool, lo, hi int) (pick, int) {
	best := noPick
	evals := 0
	for n := lo; n < hi; n++ {
		if chosen[n] {
			continue
		}
		cand := pick{index: n, gain: uncovered.Overlap(subsets[n])}
		evals++
		if best.better(cand) {
			best = cand
		}
	}
	return best, evals
}

// bestParallel делит индексы на непрерывные блоки, ищет лучший кандидат в
// каждом блоке параллельно и затем сводит результаты в порядке блоков.
func bestParallel[E comparable](ctx context.Context, uncovered setcover.Set[E], subsets []setcover.Set[E], chosen []bool, workers int) (pick, int, error) {
	n := len(subsets)
	if n == 0 {
		return noPick, 0, nil
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	picks := make([]pick, workers)
	evals := make([]int, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, n)
		picks[w] = noPick
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			picks[w], evals[w] = bestIn(uncovered, subsets, chosen, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return noPick, 0, err
	}

	best := noPick
	total := 0
	for w := range picks {
		total += evals[w]
		if best.better(picks[w]) {
			best = picks[w]
		}
	}
	return best, total, nil
}
