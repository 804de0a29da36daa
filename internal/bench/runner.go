package bench

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"setCover/internal/opt"
	"setCover/internal/setcover"
)

type Algorithm struct {
	Name    string
	Factory func(seed int64) (opt.Optimizer, error)
}

type Record struct {
	RunID string
	Algo  string
	Case  string

	Elements     int
	Subsets      int
	MaxFrequency int
	Optimal      int // 0 = unknown
	Runs         int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	CoverBest  int
	CoverWorst int
	CoverMean  float64
	CoverStd   float64
}

// Ratio is the best cover size over the known optimum, 0 when the optimum is
// unknown.
func (r Record) Ratio() float64 {
	if r.Optimal <= 0 {
		return 0
	}
	return float64(r.CoverBest) / float64(r.Optimal)
}

type Runner struct {
	RunID         string
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout
	Log           logrus.FieldLogger
}

func (r Runner) log() logrus.FieldLogger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}

func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	if r.Runs < 1 {
		return Record{}, errors.Errorf("runs must be >= 1 (got %d)", r.Runs)
	}
	log := r.log().WithFields(logrus.Fields{"case": c.Name(), "algo": algo.Name})

	buildStart := time.Now()
	inst, err := c.Build()
	if err != nil {
		return Record{}, errors.Wrapf(err, "case %s", c.Name())
	}
	st := inst.Stats()
	log.WithFields(logrus.Fields{
		"elements": st.Elements,
		"subsets":  st.Subsets,
		"elapsed":  time.Since(buildStart),
	}).Debug("instance ready")

	eval, err := setcover.NewEvaluator(inst)
	if err != nil {
		return Record{}, err
	}

	sizes := make([]int, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)

	for i := 0; i < r.Runs; i++ {
		runSeed := r.BaseSeed + int64(i)

		op, err := algo.Factory(runSeed)
		if err != nil {
			return Record{}, errors.Wrapf(err, "run %d: factory", i)
		}

		runCtx := ctx
		cancel := func() {}
		if r.PerRunTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
		}
		start := time.Now()
		res, err := op.Solve(runCtx, inst)
		dur := time.Since(start)
		// проверяем до cancel(), иначе контекст всегда будет отменён
		interrupted := runCtx.Err() != nil
		cancel()

		if err != nil && interrupted {
			return Record{}, errors.Wrapf(err, "run %d: cancelled/timeout", i)
		}
		if err != nil {
			return Record{}, errors.Wrapf(err, "run %d: solve error", i)
		}
		if err := eval.Verify(res.Cover); err != nil {
			return Record{}, errors.Wrapf(err, "run %d: invalid cover", i)
		}

		log.WithFields(logrus.Fields{
			"run":        i,
			"size":       res.Size,
			"iterations": res.Iterations,
			"elapsed":    dur,
		}).Debug("run finished")

		sizes = append(sizes, res.Size)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	sStats := CalcIntStats(sizes)
	tStats := CalcFloatStats(timesMs)

	return Record{
		RunID: r.RunID,
		Algo:  algo.Name,
		Case:  c.Name(),

		Elements:     st.Elements,
		Subsets:      st.Subsets,
		MaxFrequency: st.MaxFrequency,
		Optimal:      inst.OptimalSize,
		Runs:         r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		CoverBest:  sStats.Best,
		CoverWorst: sStats.Worst,
		CoverMean:  sStats.Mean,
		CoverStd:   sStats.Std,
	}, nil
}

func WriteCSV(path string, records []Record) error {
	if dir := dirOf(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"run_id", "algo", "case",
		"elements", "subsets", "max_frequency", "optimal", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"cover_best", "cover_worst", "cover_mean", "cover_std", "ratio",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.RunID,
			r.Algo,
			r.Case,

			itoa(r.Elements),
			itoa(r.Subsets),
			itoa(r.MaxFrequency),
			itoa(r.Optimal),
			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			itoa(r.CoverBest),
			itoa(r.CoverWorst),
			ftoa(r.CoverMean),
			ftoa(r.CoverStd),
			ftoa(r.Ratio()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func dirOf(path string) string {
	d := filepath.Dir(path)
	if d == "." {
		return ""
	}
	return d
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
