package setcover

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInfeasibleInstance is reported when the union of the subset collection
// does not contain the universe.
var ErrInfeasibleInstance = errors.New("infeasible instance: subsets do not cover the universe")

// InfeasibleError describes where a solve got stuck. It matches
// ErrInfeasibleInstance under errors.Is.
type InfeasibleError struct {
	Iteration int
	Uncovered int
	Chosen    int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("%v (iteration %d: %d element(s) uncovered after %d subset(s) chosen)",
		ErrInfeasibleInstance, e.Iteration, e.Uncovered, e.Chosen)
}

func (e *InfeasibleError) Is(target error) bool {
	return target == ErrInfeasibleInstance
}
