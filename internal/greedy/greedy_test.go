package greedy_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setCover/internal/gen"
	"setCover/internal/greedy"
	"setCover/internal/setcover"
)

func sets(ss ...[]int) []setcover.Set[int] {
	out := make([]setcover.Set[int], len(ss))
	for i, s := range ss {
		out[i] = setcover.NewSet(s...)
	}
	return out
}

func TestFindCoverageSquare(t *testing.T) {
	x := setcover.Range(1, 4)
	f := sets([]int{1, 2}, []int{2, 3}, []int{3, 4}, []int{1, 4})

	c, err := greedy.FindCoverage(x, f)
	require.NoError(t, err)
	// all four tie on the first step, {1,2} wins by index; {3,4} is then the
	// only subset covering two
	assert.Equal(t, []int{0, 2}, c.Indices)
	assert.True(t, setcover.Union(f[0], f[2]).Equal(x))
}

func TestFindCoverageTieBreakLowestIndex(t *testing.T) {
	x := setcover.Range(1, 3)
	f := sets([]int{1}, []int{2, 3}, []int{1, 2}, []int{2, 3}, []int{1, 2, 3})

	c, err := greedy.FindCoverage(x, f)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, c.Indices)

	f = sets([]int{1}, []int{2, 3}, []int{1, 2}, []int{2, 3})
	c, err = greedy.FindCoverage(x, f)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, c.Indices)
}

func TestFindCoverageIgnoresForeignElements(t *testing.T) {
	x := setcover.NewSet(1, 2)
	f := sets([]int{7, 8, 9, 1}, []int{1, 2})

	c, err := greedy.FindCoverage(x, f)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, c.Indices)
}

func TestFindCoverageDuplicatesAndEmpties(t *testing.T) {
	x := setcover.Range(1, 4)
	f := sets([]int{}, []int{1, 2}, []int{1, 2}, []int{}, []int{3}, []int{4, 3})

	c, err := greedy.FindCoverage(x, f)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5}, c.Indices)
}

func TestFindCoverageEmptyUniverse(t *testing.T) {
	c, err := greedy.FindCoverage(setcover.Set[int]{}, sets([]int{1}))
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestFindCoverageInfeasible(t *testing.T) {
	x := setcover.Range(1, 5)
	f := sets([]int{1, 2}, []int{2, 3}, []int{4})

	c, err := greedy.FindCoverage(x, f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, setcover.ErrInfeasibleInstance))
	assert.Empty(t, c.Indices)

	var ie *setcover.InfeasibleError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 1, ie.Uncovered)
	assert.Equal(t, 3, ie.Chosen)

	_, err = greedy.FindCoverage(x, nil)
	assert.True(t, errors.Is(err, setcover.ErrInfeasibleInstance))
}

func TestFindCoverageDoesNotMutateInput(t *testing.T) {
	x := setcover.Range(1, 6)
	f := sets([]int{1, 2, 3}, []int{3, 4}, []int{5, 6})

	_, err := greedy.FindCoverage(x, f)
	require.NoError(t, err)
	assert.Equal(t, 6, x.Len())
	assert.Equal(t, []int{1, 2, 3}, setcover.Sorted(f[0]))
	assert.Equal(t, []int{3, 4}, setcover.Sorted(f[1]))
}

func TestFindCoverageStrings(t *testing.T) {
	x := setcover.NewSet("a", "b", "c")
	f := []setcover.Set[string]{setcover.NewSet("a"), setcover.NewSet("b", "c"), setcover.NewSet("a", "c")}

	c, err := greedy.FindCoverage(x, f)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, c.Indices)
}

func TestAdversarialGap(t *testing.T) {
	p, err := gen.Adversarial(3)
	require.NoError(t, err)

	c, err := greedy.FindCoverage(p.Universe, p.Subsets)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2}, c.Indices)
	assert.Greater(t, c.Len(), p.OptimalSize)

	for k := 3; k <= 10; k++ {
		p, err := gen.Adversarial(k)
		require.NoError(t, err)
		c, err := greedy.FindCoverage(p.Universe, p.Subsets)
		require.NoError(t, err)
		assert.Equal(t, k, c.Len(), "k=%d", k)
	}
}

func TestRandomInstancesProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 120; n++ {
		p, err := gen.Random(n, rng)
		require.NoError(t, err)

		c, err := greedy.FindCoverage(p.Universe, p.Subsets)
		require.NoError(t, err, "n=%d", n)

		ev, err := setcover.NewEvaluator(p)
		require.NoError(t, err)
		require.NoError(t, ev.Verify(c), "n=%d", n)
		assert.LessOrEqual(t, c.Len(), len(p.Subsets))

		again, err := greedy.FindCoverage(p.Universe, p.Subsets)
		require.NoError(t, err)
		assert.Equal(t, c.Indices, again.Indices, "n=%d", n)
	}
}

func TestStepsStrictlyShrinkUncovered(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	p, err := gen.Random(80, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	s, err := greedy.New(greedy.DefaultConfig(), logger)
	require.NoError(t, err)

	res, err := s.Solve(context.Background(), p)
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, res.Size)
	prev := p.Universe.Len()
	for _, e := range entries {
		uncovered := e.Data["uncovered"].(int)
		assert.Less(t, uncovered, prev)
		assert.Positive(t, e.Data["gain"].(int))
		prev = uncovered
	}
	assert.Zero(t, prev)
	assert.Equal(t, res.Size, res.Iterations)
}

func TestParallelScanMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	seq, err := greedy.New(greedy.DefaultConfig(), logrus.New())
	require.NoError(t, err)
	par, err := greedy.New(greedy.Config{Workers: 4, ParallelThreshold: 0}, logrus.New())
	require.NoError(t, err)

	ctx := context.Background()
	for n := 1; n <= 60; n++ {
		p, err := gen.Random(n, rng)
		require.NoError(t, err)

		a, err := seq.Solve(ctx, p)
		require.NoError(t, err)
		b, err := par.Solve(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, a.Cover.Indices, b.Cover.Indices, "n=%d", n)
		assert.Equal(t, a.Evaluations, b.Evaluations, "n=%d", n)
	}

	// heavy ties: every subset is identical, index 0 must win
	f := make([]setcover.Set[int], 50)
	for i := range f {
		f[i] = setcover.Range(1, 10)
	}
	b, err := par.Solve(ctx, &setcover.Problem[int]{Universe: setcover.Range(1, 10), Subsets: f})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, b.Cover.Indices)
}

func TestSolverResult(t *testing.T) {
	p, err := gen.Adversarial(4)
	require.NoError(t, err)
	s, err := greedy.New(greedy.DefaultConfig(), nil)
	require.NoError(t, err)

	res, err := s.Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Size)
	assert.Equal(t, []int{5, 4, 3, 2}, res.Cover.Indices)
	assert.Equal(t, 4, res.Iterations)
	// 6 + 5 + 4 + 3 unchosen subsets scanned
	assert.Equal(t, 18, res.Evaluations)
	assert.Equal(t, false, res.Meta["parallel"])
}

func TestSolverCancelled(t *testing.T) {
	p, err := gen.Adversarial(5)
	require.NoError(t, err)
	s, err := greedy.New(greedy.DefaultConfig(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Solve(ctx, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, setcover.ErrInfeasibleInstance))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, greedy.DefaultConfig().Validate())
	assert.Error(t, greedy.Config{Workers: 0}.Validate())
	assert.Error(t, greedy.Config{Workers: 1, ParallelThreshold: -1}.Validate())

	_, err := greedy.New(greedy.Config{}, nil)
	assert.Error(t, err)
}
