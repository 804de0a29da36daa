package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"setCover/internal/setcover"
)

func ReadMSC(r io.Reader) (*setcover.Problem[int], error) {
	br := bufio.NewReader(r)
	xsize, fsize, err := readHeader(br, 2)
	if err != nil {
		return nil, err
	}
	sc := newScanner(br)

	var subsets []setcover.Set[int]
	line := 1
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		if fields[0] != "s" {
			return nil, errors.Errorf("line %d: expected subset line starting with \"s\"", line)
		}
		subset := make(setcover.Set[int], len(fields)-1)
		for _, tok := range fields[1:] {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			subset.Add(v)
		}
		subsets = append(subsets, subset)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(subsets) != fsize {
		return nil, errors.Errorf("header declares %d subsets, file has %d", fsize, len(subsets))
	}

	return setcover.NewProblem(setcover.Range(1, xsize), subsets)
}

// WriteMSC writes p in msc format. The universe must be {1..|X|}.
func WriteMSC(w io.Writer, p *setcover.Problem[int]) error {
	if err := p.Validate(); err != nil {
		return err
	}
	n := p.Universe.Len()
	if !p.Universe.Equal(setcover.Range(1, n)) {
		return errors.Errorf("msc universe must be {1..%d}", n)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p set %d %d\n", n, len(p.Subsets))
	for _, s := range p.Subsets {
		bw.WriteString("s")
		for _, e := range setcover.Sorted(s) {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(e))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return sc
}

// readHeader parses the first line and returns its last two integers. skip is
// the number of leading tokens ("p set" for msc).
func readHeader(br *bufio.Reader, skip int) (xsize, fsize int, err error) {
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, err
	}
	fields := strings.Fields(line)
	if len(fields) != skip+2 {
		return 0, 0, ErrMalformedHeader
	}
	if xsize, err = strconv.Atoi(fields[skip]); err != nil {
		return 0, 0, ErrMalformedHeader
	}
	if fsize, err = strconv.Atoi(fields[skip+1]); err != nil {
		return 0, 0, ErrMalformedHeader
	}
	if xsize < 0 || fsize < 0 {
		return 0, 0, ErrMalformedHeader
	}
	if xsize > MaxHeaderSize || fsize > MaxHeaderSize {
		return 0, 0, errors.Errorf("header sizes %d %d exceed limit %d", xsize, fsize, MaxHeaderSize)
	}
	return xsize, fsize, nil
}
