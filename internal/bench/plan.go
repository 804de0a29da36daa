package bench

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Plan is a benchmark description read from YAML:
//
//	runs: 5
//	seed: 1000
//	workers: 4
//	per_run_timeout: 30s
//	out: artifacts/results.csv
//	cases:
//	  - {kind: adversarial, size: 5}
//	  - {kind: random, size: 60, instance_seed: 777}
//	  - {kind: file, path: dataset1/scp41.msc}
//	  - {kind: dir, path: dataset2}
type Plan struct {
	Runs          int           `yaml:"runs"`
	Seed          int64         `yaml:"seed"`
	Workers       int           `yaml:"workers"`
	PerRunTimeout time.Duration `yaml:"per_run_timeout"`
	Out           string        `yaml:"out"`
	Cases         []Case        `yaml:"cases"`
}

func DefaultPlan() Plan {
	return Plan{
		Runs:    1,
		Seed:    1000,
		Workers: 1,
		Out:     "artifacts/results.csv",
	}
}

// LoadPlan reads path over DefaultPlan, so omitted keys keep their defaults.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	p := DefaultPlan()
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return Plan{}, errors.Wrapf(err, "plan %s", path)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, errors.Wrapf(err, "plan %s", path)
	}
	if p.Cases, err = ExpandCases(p.Cases); err != nil {
		return Plan{}, errors.Wrapf(err, "plan %s", path)
	}
	return p, nil
}

func (p Plan) Validate() error {
	if p.Runs < 1 {
		return errors.Errorf("runs must be >= 1 (got %d)", p.Runs)
	}
	if p.Workers < 1 {
		return errors.Errorf("workers must be >= 1 (got %d)", p.Workers)
	}
	if p.PerRunTimeout < 0 {
		return errors.Errorf("per_run_timeout must be >= 0 (got %s)", p.PerRunTimeout)
	}
	if len(p.Cases) == 0 {
		return errors.New("plan has no cases")
	}
	for i, c := range p.Cases {
		if err := c.Validate(); err != nil {
			return errors.Wrapf(err, "cases[%d]", i)
		}
	}
	return nil
}
