package tracecodec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/util"
)

var ErrInvalidTrace = errors.New("tracecodec: invalid trace")

const (
	SORT_KIND = "sort"
	PATH_KIND = "path"
)

// SortTrace. values are widened to float64 so one archive format serves every element type.
type SortTrace struct {
	Algorithm string
	Values    []float64
	Steps     []da.Step[float64]
}

func NewSortTrace[T da.Number](algorithm string, values []T, steps []da.Step[T]) *SortTrace {
	t := &SortTrace{
		Algorithm: algorithm,
		Values:    make([]float64, len(values)),
		Steps:     make([]da.Step[float64], len(steps)),
	}
	for i, v := range values {
		t.Values[i] = float64(v)
	}
	for k, s := range steps {
		switch s.GetType() {
		case da.COMPARE:
			i, j := s.GetIndices()
			t.Steps[k] = da.NewCompareStep[float64](i, j)
		case da.SWAP:
			i, j := s.GetIndices()
			t.Steps[k] = da.NewSwapStep[float64](i, j)
		case da.OVERWRITE:
			t.Steps[k] = da.NewOverwriteStep(s.GetIndex(), float64(s.GetValue()))
		case da.MARK_SORTED:
			t.Steps[k] = da.NewMarkSortedStep[float64](s.GetIndex())
		}
	}
	return t
}

// PathTrace. the board as a layout ('.', '#', 'S', 'E' rows) plus the visit order and the path.
type PathTrace struct {
	Algorithm string
	Layout    []string
	Visited   []da.Index
	Path      []da.Index
}

// Trace. one decoded archive, exactly one of Sort/Path is set.
type Trace struct {
	Kind string
	Sort *SortTrace
	Path *PathTrace
}

// WriteSortTrace. bzip2 compressed, line oriented:
//
//	sort <algorithm> <numValues> <numSteps>
//	<values>
//	c i j | s i j | o i value | m i      (one step per line)
func WriteSortTrace(w io.Writer, t *SortTrace) error {
	return writeCompressed(w, func(bw *bufio.Writer) {
		fmt.Fprintf(bw, "%s %s %d %d\n", SORT_KIND, t.Algorithm, len(t.Values), len(t.Steps))

		for i, v := range t.Values {
			bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
			if i < len(t.Values)-1 {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')

		for _, s := range t.Steps {
			switch s.GetType() {
			case da.COMPARE:
				i, j := s.GetIndices()
				fmt.Fprintf(bw, "c %d %d\n", i, j)
			case da.SWAP:
				i, j := s.GetIndices()
				fmt.Fprintf(bw, "s %d %d\n", i, j)
			case da.OVERWRITE:
				fmt.Fprintf(bw, "o %d %s\n", s.GetIndex(), strconv.FormatFloat(s.GetValue(), 'f', -1, 64))
			case da.MARK_SORTED:
				fmt.Fprintf(bw, "m %d\n", s.GetIndex())
			}
		}
	})
}

// WritePathTrace. bzip2 compressed, line oriented:
//
//	path <algorithm> <rows> <numVisited> <numPath>
//	<layout, one line per row>
//	<visited indices>
//	<path indices>
func WritePathTrace(w io.Writer, t *PathTrace) error {
	return writeCompressed(w, func(bw *bufio.Writer) {
		fmt.Fprintf(bw, "%s %s %d %d %d\n", PATH_KIND, t.Algorithm, len(t.Layout), len(t.Visited), len(t.Path))
		for _, line := range t.Layout {
			fmt.Fprintf(bw, "%s\n", line)
		}
		writeIndices(bw, t.Visited)
		writeIndices(bw, t.Path)
	})
}

func writeIndices(bw *bufio.Writer, indices []da.Index) {
	for i, idx := range indices {
		bw.WriteString(strconv.FormatUint(uint64(idx), 10))
		if i < len(indices)-1 {
			bw.WriteByte(' ')
		}
	}
	bw.WriteByte('\n')
}

func writeCompressed(w io.Writer, body func(bw *bufio.Writer)) error {
	bz, err := bzip2.NewWriter(w, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(bz)
	body(bw)
	if err := bw.Flush(); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

// ReadTrace. decodes either kind of archive.
func ReadTrace(r io.Reader) (*Trace, error) {
	bz, err := bzip2.NewReader(r, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)
	line, err := util.ReadLine(br)
	if err != nil {
		return nil, invalidTrace("missing header: %v", err)
	}
	header := strings.Fields(line)
	if len(header) == 0 {
		return nil, invalidTrace("empty header")
	}

	switch header[0] {
	case SORT_KIND:
		t, err := readSortTrace(br, header)
		if err != nil {
			return nil, err
		}
		return &Trace{Kind: SORT_KIND, Sort: t}, nil
	case PATH_KIND:
		t, err := readPathTrace(br, header)
		if err != nil {
			return nil, err
		}
		return &Trace{Kind: PATH_KIND, Path: t}, nil
	default:
		return nil, invalidTrace("unknown trace kind %q", header[0])
	}
}

func ReadSortTrace(r io.Reader) (*SortTrace, error) {
	t, err := ReadTrace(r)
	if err != nil {
		return nil, err
	}
	if t.Sort == nil {
		return nil, invalidTrace("expected a %s trace, got %s", SORT_KIND, t.Kind)
	}
	return t.Sort, nil
}

func ReadPathTrace(r io.Reader) (*PathTrace, error) {
	t, err := ReadTrace(r)
	if err != nil {
		return nil, err
	}
	if t.Path == nil {
		return nil, invalidTrace("expected a %s trace, got %s", PATH_KIND, t.Kind)
	}
	return t.Path, nil
}

func readSortTrace(br *bufio.Reader, header []string) (*SortTrace, error) {
	if len(header) != 4 {
		return nil, invalidTrace("sort header needs 4 fields, got %d", len(header))
	}
	numValues, err := strconv.Atoi(header[2])
	if err != nil || numValues < 0 {
		return nil, invalidTrace("bad value count %q", header[2])
	}
	numSteps, err := strconv.Atoi(header[3])
	if err != nil || numSteps < 0 {
		return nil, invalidTrace("bad step count %q", header[3])
	}

	t := &SortTrace{
		Algorithm: header[1],
		Values:    make([]float64, 0),
		Steps:     make([]da.Step[float64], 0),
	}

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, invalidTrace("missing values: %v", err)
	}
	tokens := strings.Fields(line)
	if len(tokens) != numValues {
		return nil, invalidTrace("expected %d values, got %d", numValues, len(tokens))
	}
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, invalidTrace("bad value %q", tok)
		}
		t.Values = append(t.Values, v)
	}

	for k := 0; k < numSteps; k++ {
		line, err := util.ReadLine(br)
		if err != nil {
			return nil, invalidTrace("step %d: %v", k, err)
		}
		step, err := parseStep(strings.Fields(line))
		if err != nil {
			return nil, invalidTrace("step %d: %v", k, err)
		}
		t.Steps = append(t.Steps, step)
	}
	return t, nil
}

func parseStep(tokens []string) (da.Step[float64], error) {
	if len(tokens) < 2 {
		return da.Step[float64]{}, fmt.Errorf("too few fields")
	}
	ints := func(n int) ([]int, error) {
		if len(tokens) != n+1 {
			return nil, fmt.Errorf("%s step needs %d fields, got %d", tokens[0], n, len(tokens)-1)
		}
		out := make([]int, n)
		for i := range out {
			v, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	switch tokens[0] {
	case "c", "s":
		ij, err := ints(2)
		if err != nil {
			return da.Step[float64]{}, err
		}
		if tokens[0] == "c" {
			return da.NewCompareStep[float64](ij[0], ij[1]), nil
		}
		return da.NewSwapStep[float64](ij[0], ij[1]), nil
	case "o":
		if len(tokens) != 3 {
			return da.Step[float64]{}, fmt.Errorf("overwrite step needs 2 fields, got %d", len(tokens)-1)
		}
		idx, err := strconv.Atoi(tokens[1])
		if err != nil {
			return da.Step[float64]{}, err
		}
		v, err := strconv.ParseFloat(tokens[2], 64)
		if err != nil {
			return da.Step[float64]{}, err
		}
		return da.NewOverwriteStep(idx, v), nil
	case "m":
		k, err := ints(1)
		if err != nil {
			return da.Step[float64]{}, err
		}
		return da.NewMarkSortedStep[float64](k[0]), nil
	default:
		return da.Step[float64]{}, fmt.Errorf("unknown step %q", tokens[0])
	}
}

func readPathTrace(br *bufio.Reader, header []string) (*PathTrace, error) {
	if len(header) != 5 {
		return nil, invalidTrace("path header needs 5 fields, got %d", len(header))
	}
	counts := make([]int, 3)
	for i := range counts {
		v, err := strconv.Atoi(header[i+2])
		if err != nil || v < 0 {
			return nil, invalidTrace("bad count %q", header[i+2])
		}
		counts[i] = v
	}
	rows, numVisited, numPath := counts[0], counts[1], counts[2]

	t := &PathTrace{Algorithm: header[1], Layout: make([]string, 0)}
	for r := 0; r < rows; r++ {
		line, err := util.ReadLine(br)
		if err != nil {
			return nil, invalidTrace("layout row %d: %v", r, err)
		}
		if r > 0 && len(line) != len(t.Layout[0]) {
			return nil, invalidTrace("layout row %d has %d cells, want %d", r, len(line), len(t.Layout[0]))
		}
		t.Layout = append(t.Layout, line)
	}
	numCells := 0
	if rows > 0 {
		numCells = rows * len(t.Layout[0])
	}

	var err error
	if t.Visited, err = readIndices(br, numVisited, numCells); err != nil {
		return nil, invalidTrace("visited: %v", err)
	}
	if t.Path, err = readIndices(br, numPath, numCells); err != nil {
		return nil, invalidTrace("path: %v", err)
	}
	return t, nil
}

// readIndices. one line of n cell indices, each below numCells.
func readIndices(br *bufio.Reader, n, numCells int) ([]da.Index, error) {
	line, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}
	tokens := strings.Fields(line)
	if len(tokens) != n {
		return nil, fmt.Errorf("expected %d indices, got %d", n, len(tokens))
	}
	indices := make([]da.Index, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return nil, err
		}
		if v >= uint64(numCells) {
			return nil, fmt.Errorf("index %d outside a board of %d cells", v, numCells)
		}
		indices[i] = da.Index(v)
	}
	return indices, nil
}

func invalidTrace(format string, a ...interface{}) error {
	return util.WrapErrorf(ErrInvalidTrace, util.ErrBadParamInput, format, a...)
}

// WriteFile. creates filename and hands it to write.
func WriteFile(filename string, write func(w io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ReadFile(filename string) (*Trace, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTrace(f)
}
