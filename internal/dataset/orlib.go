package dataset

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"setCover/internal/setcover"
)

// ReadOR reads the element-major format and turns it into the subset list.
// Element i (1-based, in file order) joins every subset listed for it.
func ReadOR(r io.Reader) (*setcover.Problem[int], error) {
	br := bufio.NewReader(r)
	xsize, fsize, err := readHeader(br, 0)
	if err != nil {
		return nil, err
	}

	subsets := make([]setcover.Set[int], fsize)
	for j := range subsets {
		subsets[j] = make(setcover.Set[int])
	}

	sc := newScanner(br)
	sc.Split(bufio.ScanWords)
	next := func(elem int) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, errors.Errorf("element %d: %v", elem, io.ErrUnexpectedEOF)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, errors.Wrapf(err, "element %d", elem)
		}
		return v, nil
	}

	for elem := 1; elem <= xsize; elem++ {
		count, err := next(elem)
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, errors.Errorf("element %d: negative subset count %d", elem, count)
		}
		for ; count > 0; count-- {
			j, err := next(elem)
			if err != nil {
				return nil, err
			}
			if j < 1 || j > fsize {
				return nil, errors.Errorf("element %d: subset index %d out of range [1,%d]", elem, j, fsize)
			}
			subsets[j-1].Add(elem)
		}
	}

	return setcover.NewProblem(setcover.Range(1, xsize), subsets)
}
