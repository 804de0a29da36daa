package greedy

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"setCover/internal/opt"
	"setCover/internal/setcover"
)

// FindCoverage строит покрытие универсума жадным алгоритмом: на каждом шаге
// выбирается подмножество, покрывающее больше всего ещё непокрытых элементов
// (при равенстве с наименьшим индексом).
//
// Если подмножества не покрывают универсум, возвращается ошибка, для которой
// errors.Is(err, setcover.ErrInfeasibleInstance) истинно; частичное покрытие
// при этом не возвращается. Входные множества не изменяются.
func FindCoverage[E comparable](universe setcover.Set[E], subsets []setcover.Set[E]) (setcover.Cover, error) {
	tr, err := search(context.Background(), universe, subsets, DefaultConfig(), nil)
	if err != nil {
		return setcover.Cover{}, err
	}
	return tr.cover, nil
}

// trace: результат одного прогона жадного поиска.
type trace struct {
	cover       setcover.Cover
	iterations  int
	evaluations int
}

func search[E comparable](ctx context.Context, universe setcover.Set[E], subsets []setcover.Set[E], cfg Config, log logrus.FieldLogger) (trace, error) {
	var tr trace

	uncovered := universe.Clone()
	chosen := make([]bool, len(subsets))
	indices := make([]int, 0)

	for iter := 0; !uncovered.Empty(); iter++ {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			return trace{}, err
		}

		var (
			best  pick
			evals int
		)
		if cfg.parallel(len(subsets)) {
			var err error
			best, evals, err = bestParallel(ctx, uncovered, subsets, chosen, cfg.Workers)
			if err != nil {
				return trace{}, err
			}
		} else {
			best, evals = bestIn(uncovered, subsets, chosen, 0, len(subsets))
		}
		tr.evaluations += evals
		tr.iterations = iter + 1

		// Ни одно оставшееся подмножество не уменьшает непокрытую часть
		if best.index < 0 || best.gain == 0 {
			return trace{}, &setcover.InfeasibleError{
				Iteration: iter,
				Uncovered: uncovered.Len(),
				Chosen:    len(indices),
			}
		}

		chosen[best.index] = true
		indices = append(indices, best.index)
		uncovered.Subtract(subsets[best.index])

		if log != nil {
			log.WithFields(logrus.Fields{
				"iteration": iter,
				"subset":    best.index,
				"gain":      best.gain,
				"uncovered": uncovered.Len(),
			}).Debug("greedy step")
		}
	}

	tr.cover = setcover.Cover{Indices: indices}
	return tr, nil
}

// Solver - реализация жадного алгоритма за интерфейсом opt.Optimizer.
type Solver struct {
	Cfg Config
	Log logrus.FieldLogger
}

// New возвращает новый жадный солвер с валидацией конфигурации.
// Если log == nil, используется стандартный логгер logrus.
func New(cfg Config, log logrus.FieldLogger) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Solver{Cfg: cfg, Log: log}, nil
}

func (s *Solver) Solve(ctx context.Context, p *setcover.Problem[int]) (opt.Result, error) {
	start := time.Now()

	if err := p.Validate(); err != nil {
		return opt.Result{}, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}

	tr, err := search(ctx, p.Universe, p.Subsets, s.Cfg, s.Log)
	if err != nil {
		if errors.Is(err, setcover.ErrInfeasibleInstance) {
			return opt.Result{}, err
		}
		return opt.Result{}, errors.Wrap(err, "greedy search interrupted")
	}

	return opt.Result{
		Cover:       tr.cover,
		Size:        tr.cover.Len(),
		Evaluations: tr.evaluations,
		Iterations:  tr.iterations,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"workers":  s.Cfg.Workers,
			"parallel": s.Cfg.parallel(len(p.Subsets)),
		},
	}, nil
}
