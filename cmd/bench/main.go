package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"setCover/internal/bench"
	"setCover/internal/dataset"
	"setCover/internal/gen"
	"setCover/internal/greedy"
	"setCover/internal/opt"
	"setCover/internal/setcover"
)

var log = logrus.New()

// Фабрики

func newGreedyFactory(cfg greedy.Config) func(seed int64) (opt.Optimizer, error) {
	return func(int64) (opt.Optimizer, error) {
		return greedy.New(cfg, log)
	}
}

func main() {
	app := kingpin.New("setcover-bench", "Жадный алгоритм покрытия множества: решение, генерация и замеры.")
	app.HelpFlag.Short('h')

	// CLI флаги, общие для всех команд
	var (
		logLevel  = app.Flag("log-level", "уровень логирования: debug | info | warn | error").Default("info").Enum("debug", "info", "warn", "error")
		workers   = app.Flag("workers", "количество горутин при выборе подмножества").Default("1").Int()
		threshold = app.Flag("parallel-threshold", "минимальное |F|, начиная с которого выбор распараллеливается").Default("2048").Int()
	)

	solveCmd := app.Command("solve", "решить задачи из файлов бенчмарков (.msc, .txt)")
	solveFiles := solveCmd.Arg("paths", "файлы экземпляров задачи или каталоги с ними").Required().ExistingFilesOrDirs()
	solveFormat := solveCmd.Flag("format", "формат файлов: msc | or (по умолчанию по расширению)").Enum("msc", "or")

	advCmd := app.Command("adversarial", "прогон на плохих для жадного алгоритма примерах")
	advFrom := advCmd.Flag("from", "начальное k").Default("3").Int()
	advTo := advCmd.Flag("to", "конечное k").Default("9").Int()

	randCmd := app.Command("random", "прогон на случайных задачах")
	randFrom := randCmd.Flag("from", "начальный размер универсума").Default("20").Int()
	randTo := randCmd.Flag("to", "конечный размер универсума").Default("99").Int()
	randSeed := randCmd.Flag("seed", "базовый сид генерации экземпляров").Default("777").Int64()

	genCmd := app.Command("generate", "сгенерировать задачу и записать её в формате msc")
	genAdv := genCmd.Command("adversarial", "плохой для жадного алгоритма пример")
	genAdvK := genAdv.Flag("k", "параметр построения k").Required().Int()
	genAdvOut := genAdv.Flag("out", "путь к выходному файлу").Required().String()
	genRand := genCmd.Command("random", "случайная задача")
	genRandN := genRand.Flag("n", "размер универсума").Required().Int()
	genRandSeed := genRand.Flag("seed", "сид генератора").Default("777").Int64()
	genRandOut := genRand.Flag("out", "путь к выходному файлу").Required().String()

	runCmd := app.Command("run", "выполнить план замеров из YAML и сохранить CSV")
	runPlan := runCmd.Arg("plan", "YAML-файл плана").Required().ExistingFile()
	runOut := runCmd.Flag("out", "путь к выходному CSV-файлу (перекрывает out из плана)").String()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		app.Fatalf("%v", err)
	}
	log.SetLevel(level)

	cfg := greedy.Config{Workers: *workers, ParallelThreshold: *threshold}
	if err := cfg.Validate(); err != nil {
		app.Fatalf("конфликт в конфигурации жадного алгоритма: %v", err)
	}

	ctx := context.Background()

	switch command {
	case solveCmd.FullCommand():
		err = runSolve(ctx, cfg, *solveFiles, *solveFormat)
	case advCmd.FullCommand():
		err = runAdversarial(ctx, cfg, *advFrom, *advTo)
	case randCmd.FullCommand():
		err = runRandom(ctx, cfg, *randFrom, *randTo, *randSeed)
	case genAdv.FullCommand():
		err = generate(*genAdvOut, func() (*setcover.Problem[int], error) { return gen.Adversarial(*genAdvK) })
	case genRand.FullCommand():
		err = generate(*genRandOut, func() (*setcover.Problem[int], error) {
			return gen.Random(*genRandN, rand.New(rand.NewSource(*genRandSeed)))
		})
	case runCmd.FullCommand():
		err = runBench(ctx, cfg, *runPlan, *runOut)
	}
	if err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

func runSolve(ctx context.Context, cfg greedy.Config, paths []string, format string) error {
	solver, err := greedy.New(cfg, log)
	if err != nil {
		return err
	}
	cases, err := bench.PathCases(paths, format)
	if err != nil {
		return err
	}
	for _, c := range cases {
		path := c.Path
		p, err := c.Build()
		if err != nil {
			// Некорректный заголовок завершает процесс
			if errors.Is(err, dataset.ErrMalformedHeader) {
				log.WithError(err).WithField("file", path).Fatal("cannot read instance")
			}
			return err
		}
		st := p.Stats()
		fmt.Printf("Прочитаны данные из %s, |X|=%s, |F|=%s, k=%d\n",
			path, humanize.Comma(int64(st.Elements)), humanize.Comma(int64(st.Subsets)), st.MaxFrequency)

		res, err := solver.Solve(ctx, p)
		if errors.Is(err, setcover.ErrInfeasibleInstance) {
			color.Red("  Покрытие не существует: %v", err)
			continue
		}
		if err != nil {
			return err
		}
		printResult(res, p.OptimalSize)
		log.WithFields(logrus.Fields{
			"indices": res.Cover.Sorted(),
			"subsets": coverSets(p, res.Cover),
		}).Debug("cover")
	}
	return nil
}

func runAdversarial(ctx context.Context, cfg greedy.Config, from, to int) error {
	solver, err := greedy.New(cfg, log)
	if err != nil {
		return err
	}
	fmt.Printf("%4s %10s %6s %8s %8s %8s\n", "k", "|X|", "|F|", "greedy", "log2|X|", "optimal")
	for _, c := range bench.AdversarialCases(from, to) {
		k := c.Size
		p, err := c.Build()
		if err != nil {
			return err
		}
		res, err := solver.Solve(ctx, p)
		if err != nil {
			return errors.Wrap(err, c.Name())
		}
		size := fmt.Sprintf("%8d", res.Size)
		if res.Size > p.OptimalSize {
			size = color.RedString(size)
		}
		fmt.Printf("%4d %10s %6d %s %8.2f %8d\n",
			k, humanize.Comma(int64(p.Universe.Len())), len(p.Subsets), size,
			log2(p.Universe.Len()), p.OptimalSize)
	}
	return nil
}

func runRandom(ctx context.Context, cfg greedy.Config, from, to int, seed int64) error {
	solver, err := greedy.New(cfg, log)
	if err != nil {
		return err
	}
	for _, c := range bench.RandomCases(from, to, seed) {
		p, err := c.Build()
		if err != nil {
			return err
		}
		fmt.Printf("Случайная задача %s, |X|=%d, |F|=%d\n", c.Name(), p.Universe.Len(), len(p.Subsets))
		res, err := solver.Solve(ctx, p)
		if err != nil {
			return errors.Wrap(err, c.Name())
		}
		printResult(res, 0)
	}
	return nil
}

func runBench(ctx context.Context, cfg greedy.Config, planPath, out string) error {
	plan, err := bench.LoadPlan(planPath)
	if err != nil {
		return err
	}
	if out != "" {
		plan.Out = out
	}
	if plan.Workers > 1 {
		cfg.Workers = plan.Workers
	}

	runner := bench.Runner{
		RunID:         uuid.NewString(),
		Runs:          plan.Runs,
		BaseSeed:      plan.Seed,
		PerRunTimeout: plan.PerRunTimeout,
		Log:           log,
	}
	algo := bench.Algorithm{Name: "greedy", Factory: newGreedyFactory(cfg)}

	var records []bench.Record
	for _, c := range plan.Cases {
		fmt.Printf("Запущен алгоритм %s; случай %s (общее кол-во запусков=%d)...\n", algo.Name, c.Name(), runner.Runs)

		rec, err := runner.RunCase(ctx, c, algo)
		if errors.Is(err, setcover.ErrInfeasibleInstance) {
			color.Red("  Покрытие не существует: %v", err)
			continue
		}
		if err != nil {
			return err
		}
		records = append(records, rec)

		fmt.Printf("  Размер покрытия: лучшее=%d среднее=%.2f | Время: среднее=%.2fms стандартное отклонение=%.2fms\n",
			rec.CoverBest, rec.CoverMean, rec.TimeMeanMs, rec.TimeStdMs)
	}

	if err := bench.WriteCSV(plan.Out, records); err != nil {
		return errors.Wrap(err, "ошибка при записи в CSV")
	}
	fmt.Println("Saved:", plan.Out)
	return nil
}

func generate(out string, build func() (*setcover.Problem[int], error)) error {
	p, err := build()
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := dataset.WriteMSC(f, p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if p.OptimalSize > 0 {
		if err := os.WriteFile(out+".opt", []byte(fmt.Sprintf("%d\n", p.OptimalSize)), 0o644); err != nil {
			return err
		}
	}
	fmt.Printf("Saved: %s (|X|=%d, |F|=%d)\n", out, p.Universe.Len(), len(p.Subsets))
	return nil
}

func printResult(res opt.Result, optimal int) {
	line := fmt.Sprintf("  Найдено покрытие размера %d", res.Size)
	if optimal > 0 {
		line += fmt.Sprintf(", оптимальное: %d", optimal)
	}
	line += fmt.Sprintf(" (итераций %d, время %s)", res.Iterations, res.Duration)
	if optimal > 0 && res.Size > optimal {
		color.Yellow("%s", line)
		return
	}
	fmt.Println(line)
}

// coverSets lists the chosen subsets by value, in index order.
func coverSets(p *setcover.Problem[int], c setcover.Cover) [][]int {
	sets := p.Select(c.Indices)
	out := make([][]int, len(sets))
	for i, s := range sets {
		out[i] = setcover.Sorted(s)
	}
	return out
}

func log2(n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Log2(float64(n))
}
