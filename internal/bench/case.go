package bench

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"setCover/internal/dataset"
	"setCover/internal/gen"
	"setCover/internal/setcover"
)

type Kind string

const (
	KindRandom      Kind = "random"
	KindAdversarial Kind = "adversarial"
	KindFile        Kind = "file"
	// KindDir stands for every instance file in a directory; ExpandCases
	// replaces it with file cases.
	KindDir Kind = "dir"
)

// Case describes one benchmark instance. Size is n for random instances and k
// for adversarial ones; Path and Format are used by file and dir cases.
type Case struct {
	Kind         Kind   `yaml:"kind"`
	Size         int    `yaml:"size,omitempty"`
	Path         string `yaml:"path,omitempty"`
	Format       string `yaml:"format,omitempty"`
	InstanceSeed int64  `yaml:"instance_seed,omitempty"`
}

func (c Case) Name() string {
	switch c.Kind {
	case KindRandom:
		return fmt.Sprintf("random-n%d-s%d", c.Size, c.InstanceSeed)
	case KindAdversarial:
		return fmt.Sprintf("adversarial-k%d", c.Size)
	case KindFile, KindDir:
		return filepath.Base(c.Path)
	default:
		return string(c.Kind)
	}
}

func (c Case) Validate() error {
	switch c.Kind {
	case KindRandom:
		if c.Size < 1 {
			return errors.Errorf("%s: size must be >= 1 (got %d)", c.Kind, c.Size)
		}
	case KindAdversarial:
		if c.Size < 0 || c.Size > gen.MaxAdversarialK {
			return errors.Errorf("%s: size must be in [0,%d] (got %d)", c.Kind, gen.MaxAdversarialK, c.Size)
		}
	case KindFile, KindDir:
		if c.Path == "" {
			return errors.Errorf("%s: path is required", c.Kind)
		}
		if c.Format != "" {
			if _, err := dataset.ParseFormat(c.Format); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("unknown case kind %q", c.Kind)
	}
	return nil
}

// Build produces the problem instance; random instances are reproducible from
// InstanceSeed.
func (c Case) Build() (*setcover.Problem[int], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Kind {
	case KindRandom:
		return gen.Random(c.Size, randForSeed(c.InstanceSeed))
	case KindAdversarial:
		return gen.Adversarial(c.Size)
	case KindDir:
		return nil, errors.Errorf("%s: directory case %s must be expanded first", c.Kind, c.Path)
	default:
		var format dataset.Format
		if c.Format != "" {
			format = dataset.Format(c.Format)
		}
		return dataset.Load(c.Path, format)
	}
}

func RandomCases(from, to int, baseSeed int64) []Case {
	var out []Case
	for n := from; n <= to; n++ {
		out = append(out, Case{Kind: KindRandom, Size: n, InstanceSeed: baseSeed + int64(n)})
	}
	return out
}

func AdversarialCases(from, to int) []Case {
	var out []Case
	for k := from; k <= to; k++ {
		out = append(out, Case{Kind: KindAdversarial, Size: k})
	}
	return out
}

// DirCases lists the instance files in dir whose extension maps to a known
// format, in name order.
func DirCases(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []Case
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if _, err := dataset.FormatFor(path); err != nil {
			continue
		}
		out = append(out, Case{Kind: KindFile, Path: path})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// PathCases turns command-line paths into file cases; directories are
// expanded with DirCases. format, if set, applies to every file.
func PathCases(paths []string, format string) ([]Case, error) {
	cases := make([]Case, 0, len(paths))
	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		kind := KindFile
		if fi.IsDir() {
			kind = KindDir
		}
		cases = append(cases, Case{Kind: kind, Path: path, Format: format})
	}
	return ExpandCases(cases)
}

// ExpandCases replaces every dir case with the file cases of its directory,
// keeping the order of the rest.
func ExpandCases(cases []Case) ([]Case, error) {
	out := make([]Case, 0, len(cases))
	for _, c := range cases {
		if c.Kind != KindDir {
			out = append(out, c)
			continue
		}
		files, err := DirCases(c.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "%s case", c.Kind)
		}
		for _, f := range files {
			f.Format = c.Format
			out = append(out, f)
		}
	}
	return out, nil
}

func randForSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
