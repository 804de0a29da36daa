package dataset

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadOptimal reads the known optimum from the first line of path. A missing
// file is not an error: ok is false.
func ReadOptimal(path string) (optimal int, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, false, errors.Wrapf(err, "%s", path)
		}
		return 0, false, errors.Errorf("%s: empty optimum file", path)
	}
	optimal, err = strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, false, errors.Wrapf(err, "%s", path)
	}
	return optimal, true, nil
}
