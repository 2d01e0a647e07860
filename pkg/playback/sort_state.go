package playback

import (
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/engine/sorting"
	"github.com/lintang-b-s/algotrace/pkg/util"
)

// SortState. renderer-side array model. it only ever learns about the run through the steps applied to it.
type SortState[T da.Number] struct {
	initial []T
	values  []T
	sorted  []bool
	applied int

	highlightType StepHighlight
	hi, hj        int
}

type StepHighlight uint8

const (
	HIGHLIGHT_NONE StepHighlight = iota
	HIGHLIGHT_COMPARE
	HIGHLIGHT_SWAP
	HIGHLIGHT_OVERWRITE
)

func NewSortState[T da.Number](values []T) *SortState[T] {
	s := &SortState[T]{initial: make([]T, len(values))}
	copy(s.initial, values)
	s.Reset()
	return s
}

func (s *SortState[T]) Reset() {
	s.values = make([]T, len(s.initial))
	copy(s.values, s.initial)
	s.sorted = make([]bool, len(s.initial))
	s.applied = 0
	s.highlightType = HIGHLIGHT_NONE
}

// Apply. one step. an out of range step leaves the state untouched.
func (s *SortState[T]) Apply(step da.Step[T]) error {
	n := len(s.values)
	inRange := func(k int) bool { return k >= 0 && k < n }

	switch step.GetType() {
	case da.COMPARE, da.SWAP:
		i, j := step.GetIndices()
		if !inRange(i) || !inRange(j) {
			return util.WrapErrorf(sorting.ErrStepOutOfRange, util.ErrBadParamInput, "step %d %s outside array of %d",
				s.applied, step, n)
		}
		s.hi, s.hj = i, j
		if step.GetType() == da.SWAP {
			s.values[i], s.values[j] = s.values[j], s.values[i]
			s.highlightType = HIGHLIGHT_SWAP
		} else {
			s.highlightType = HIGHLIGHT_COMPARE
		}
	case da.OVERWRITE:
		k := step.GetIndex()
		if !inRange(k) {
			return util.WrapErrorf(sorting.ErrStepOutOfRange, util.ErrBadParamInput, "step %d %s outside array of %d",
				s.applied, step, n)
		}
		s.values[k] = step.GetValue()
		s.highlightType = HIGHLIGHT_OVERWRITE
		s.hi, s.hj = k, k
	case da.MARK_SORTED:
		k := step.GetIndex()
		if !inRange(k) {
			return util.WrapErrorf(sorting.ErrStepOutOfRange, util.ErrBadParamInput, "step %d %s outside array of %d",
				s.applied, step, n)
		}
		s.sorted[k] = true
		s.highlightType = HIGHLIGHT_NONE
	}
	s.applied++
	return nil
}

func (s *SortState[T]) ApplyAll(steps []da.Step[T]) error {
	for _, step := range steps {
		if err := s.Apply(step); err != nil {
			return err
		}
	}
	return nil
}

// ApplyTo. state after the first k steps, whatever was applied before.
func (s *SortState[T]) ApplyTo(steps []da.Step[T], k int) error {
	if k < 0 || k > len(steps) {
		return util.WrapErrorf(ErrPositionOutOfRange, util.ErrBadParamInput, "position %d outside [0, %d]", k, len(steps))
	}
	s.Reset()
	return s.ApplyAll(steps[:k])
}

func (s *SortState[T]) Applied() int {
	return s.applied
}

func (s *SortState[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

func (s *SortState[T]) Sorted() []bool {
	out := make([]bool, len(s.sorted))
	copy(out, s.sorted)
	return out
}

func (s *SortState[T]) IsSorted(k int) bool {
	return k >= 0 && k < len(s.sorted) && s.sorted[k]
}

// Comparing. pair highlighted by the last applied step, if it was a compare.
func (s *SortState[T]) Comparing() (int, int, bool) {
	return s.hi, s.hj, s.highlightType == HIGHLIGHT_COMPARE
}

func (s *SortState[T]) Swapping() (int, int, bool) {
	return s.hi, s.hj, s.highlightType == HIGHLIGHT_SWAP
}

func (s *SortState[T]) Overwritten() (int, bool) {
	return s.hi, s.highlightType == HIGHLIGHT_OVERWRITE
}
