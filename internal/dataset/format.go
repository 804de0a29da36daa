package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"setCover/internal/setcover"
)

type Format string

const (
	// FormatMSC: "p set U S" header, one "s e1 e2 ..." line per subset.
	FormatMSC Format = "msc"
	// FormatOR: "U S" header, then per element a count and the 1-based
	// indices of the subsets containing it.
	FormatOR Format = "or"
)

// MaxHeaderSize bounds the element and subset counts a header may declare;
// both are allocated up front.
const MaxHeaderSize = 1 << 24

// ErrMalformedHeader is returned when the first line of an instance file does
// not hold the sizes the format requires.
var ErrMalformedHeader = errors.New("incorrect input file format (no header)")

// FormatFor picks a format from the file extension: .msc or .txt.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msc":
		return FormatMSC, nil
	case ".txt":
		return FormatOR, nil
	default:
		return "", errors.Errorf("cannot infer instance format of %q", path)
	}
}

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatMSC:
		return FormatMSC, nil
	case FormatOR:
		return FormatOR, nil
	default:
		return "", errors.Errorf("unknown instance format %q", s)
	}
}

// Load reads an instance in the given format (inferred from the extension
// when empty) and attaches the optimum from a "<path>.opt" file if present.
func Load(path string, format Format) (*setcover.Problem[int], error) {
	if format == "" {
		var err error
		if format, err = FormatFor(path); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var p *setcover.Problem[int]
	switch format {
	case FormatMSC:
		p, err = ReadMSC(f)
	case FormatOR:
		p, err = ReadOR(f)
	default:
		err = errors.Errorf("unknown instance format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error in file %s", path)
	}

	optimal, ok, err := ReadOptimal(path + ".opt")
	if err != nil {
		return nil, err
	}
	if ok {
		p.OptimalSize = optimal
	}
	return p, nil
}
