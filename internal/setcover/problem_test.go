package setcover

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProblem(t *testing.T) *Problem[int] {
	t.Helper()
	p, err := NewProblem(Range(1, 4), []Set[int]{
		NewSet(1, 2),
		NewSet(2, 3),
		{},
		NewSet(3, 4, 99),
	})
	require.NoError(t, err)
	return p
}

func TestProblemValidate(t *testing.T) {
	var nilProblem *Problem[int]
	assert.Error(t, nilProblem.Validate())
	assert.Error(t, (&Problem[int]{}).Validate())
	assert.Error(t, (&Problem[int]{Universe: Range(1, 2), OptimalSize: -1}).Validate())
	assert.NoError(t, (&Problem[int]{Universe: Set[int]{}}).Validate())
}

func TestProblemUncovered(t *testing.T) {
	p := sampleProblem(t)
	assert.True(t, p.Feasible())

	p.Universe.Add(5)
	assert.Equal(t, []int{5}, Sorted(p.Uncovered()))
	assert.False(t, p.Feasible())
}

func TestProblemStats(t *testing.T) {
	st := sampleProblem(t).Stats()
	assert.Equal(t, Stats{
		Elements:      4,
		Subsets:       4,
		EmptySubsets:  1,
		LargestSubset: 3,
		MaxFrequency:  2,
	}, st)
}

func TestSelectIsIndexOrdered(t *testing.T) {
	p := sampleProblem(t)
	sets := p.Select([]int{3, 0})
	require.Len(t, sets, 2)
	assert.True(t, sets[0].Equal(NewSet(1, 2)))
	assert.True(t, sets[1].Equal(NewSet(3, 4, 99)))
}

func TestValidateIndices(t *testing.T) {
	assert.NoError(t, ValidateIndices([]int{2, 0}, 3))
	assert.Error(t, ValidateIndices([]int{3}, 3))
	assert.Error(t, ValidateIndices([]int{-1}, 3))
	assert.Error(t, ValidateIndices([]int{1, 1}, 3))
}

func TestEvaluator(t *testing.T) {
	ev, err := NewEvaluator(sampleProblem(t))
	require.NoError(t, err)

	missing, err := ev.Missing([]int{0})
	require.NoError(t, err)
	assert.Equal(t, 2, missing)

	assert.NoError(t, ev.Verify(Cover{Indices: []int{3, 0}}))
	assert.Error(t, ev.Verify(Cover{Indices: []int{0, 1}}))
	assert.Error(t, ev.Verify(Cover{Indices: []int{7}}))

	// scratch state must not leak between calls
	missing, err = ev.Missing(nil)
	require.NoError(t, err)
	assert.Equal(t, 4, missing)
}

func TestInfeasibleErrorMatchesSentinel(t *testing.T) {
	var err error = &InfeasibleError{Iteration: 2, Uncovered: 3, Chosen: 2}
	assert.True(t, errors.Is(err, ErrInfeasibleInstance))
	assert.True(t, errors.Is(errors.Wrap(err, "solve"), ErrInfeasibleInstance))
	assert.Contains(t, err.Error(), "3 element(s) uncovered")
}
