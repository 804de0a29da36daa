package opt

import (
	"context"
	"time"

	"setCover/internal/setcover"
)

type Optimizer interface {
	Solve(ctx context.Context, p *setcover.Problem[int]) (Result, error)
}

type Result struct {
	Cover       setcover.Cover
	Size        int
	Evaluations int
	Iterations  int
	Duration    time.Duration
	Meta        map[string]any
}
