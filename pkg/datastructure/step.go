package datastructure

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

type StepType uint8

const (
	COMPARE StepType = iota
	SWAP
	OVERWRITE
	MARK_SORTED
)

func (t StepType) String() string {
	switch t {
	case COMPARE:
		return "compare"
	case SWAP:
		return "swap"
	case OVERWRITE:
		return "overwrite"
	case MARK_SORTED:
		return "markSorted"
	default:
		return "unknown"
	}
}

func ParseStepType(s string) (StepType, error) {
	switch s {
	case "compare":
		return COMPARE, nil
	case "swap":
		return SWAP, nil
	case "overwrite":
		return OVERWRITE, nil
	case "markSorted":
		return MARK_SORTED, nil
	default:
		return 0, fmt.Errorf("unknown step type %q", s)
	}
}

// Step. one atomic operation of a sorting run.
// compare & swap use indices (i, j). overwrite & markSorted use index (stored in i), overwrite also carries value.
type Step[T Number] struct {
	stepType StepType
	i, j     int
	value    T
}

func NewCompareStep[T Number](i, j int) Step[T] {
	return Step[T]{stepType: COMPARE, i: i, j: j}
}

func NewSwapStep[T Number](i, j int) Step[T] {
	return Step[T]{stepType: SWAP, i: i, j: j}
}

func NewOverwriteStep[T Number](index int, value T) Step[T] {
	return Step[T]{stepType: OVERWRITE, i: index, value: value}
}

func NewMarkSortedStep[T Number](index int) Step[T] {
	return Step[T]{stepType: MARK_SORTED, i: index}
}

func (s Step[T]) GetType() StepType {
	return s.stepType
}

// GetIndices. only meaningful for compare & swap
func (s Step[T]) GetIndices() (int, int) {
	return s.i, s.j
}

// GetIndex. only meaningful for overwrite & markSorted
func (s Step[T]) GetIndex() int {
	return s.i
}

func (s Step[T]) GetValue() T {
	return s.value
}

// IsMutation. true for the steps a renderer must apply to its own copy of the array.
func (s Step[T]) IsMutation() bool {
	return s.stepType == SWAP || s.stepType == OVERWRITE
}

func (s Step[T]) String() string {
	switch s.stepType {
	case COMPARE, SWAP:
		return fmt.Sprintf("%s(%d, %d)", s.stepType, s.i, s.j)
	case OVERWRITE:
		return fmt.Sprintf("%s(%d, %v)", s.stepType, s.i, s.value)
	default:
		return fmt.Sprintf("%s(%d)", s.stepType, s.i)
	}
}

type stepJSON[T Number] struct {
	Type    string `json:"type"`
	Indices []int  `json:"indices,omitempty"`
	Index   *int   `json:"index,omitempty"`
	Value   *T     `json:"value,omitempty"`
}

func (s Step[T]) MarshalJSON() ([]byte, error) {
	out := stepJSON[T]{Type: s.stepType.String()}
	switch s.stepType {
	case COMPARE, SWAP:
		out.Indices = []int{s.i, s.j}
	case OVERWRITE:
		idx, val := s.i, s.value
		out.Index = &idx
		out.Value = &val
	case MARK_SORTED:
		idx := s.i
		out.Index = &idx
	}
	return json.Marshal(out)
}

func (s *Step[T]) UnmarshalJSON(data []byte) error {
	var in stepJSON[T]
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	stepType, err := ParseStepType(in.Type)
	if err != nil {
		return err
	}

	switch stepType {
	case COMPARE, SWAP:
		if len(in.Indices) != 2 {
			return fmt.Errorf("%s step needs exactly two indices, got %d", in.Type, len(in.Indices))
		}
		*s = Step[T]{stepType: stepType, i: in.Indices[0], j: in.Indices[1]}
	case OVERWRITE:
		if in.Index == nil || in.Value == nil {
			return fmt.Errorf("overwrite step needs index and value")
		}
		*s = NewOverwriteStep(*in.Index, *in.Value)
	case MARK_SORTED:
		if in.Index == nil {
			return fmt.Errorf("markSorted step needs index")
		}
		*s = NewMarkSortedStep[T](*in.Index)
	}
	return nil
}
