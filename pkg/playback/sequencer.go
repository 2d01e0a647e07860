package playback

import (
	"context"
	"errors"

	"github.com/lintang-b-s/algotrace/pkg/util"
)

var ErrPositionOutOfRange = errors.New("playback: position out of range")

// Sequencer. cursor over a finite trace. position is the number of items already consumed.
// not safe for concurrent use.
type Sequencer[T any] struct {
	items []T
	pos   int
}

func NewSequencer[T any](items []T) *Sequencer[T] {
	return &Sequencer[T]{items: items}
}

func (s *Sequencer[T]) Len() int {
	return len(s.items)
}

func (s *Sequencer[T]) Position() int {
	return s.pos
}

func (s *Sequencer[T]) Done() bool {
	return s.pos >= len(s.items)
}

func (s *Sequencer[T]) Remaining() int {
	return len(s.items) - s.pos
}

// At. random access, independent of the cursor.
func (s *Sequencer[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(s.items) {
		return zero, util.WrapErrorf(ErrPositionOutOfRange, util.ErrBadParamInput, "index %d outside [0, %d)", i, len(s.items))
	}
	return s.items[i], nil
}

func (s *Sequencer[T]) Next() (T, bool) {
	var zero T
	if s.Done() {
		return zero, false
	}
	item := s.items[s.pos]
	s.pos++
	return item, true
}

// Prev. un-consumes the last item and returns it.
func (s *Sequencer[T]) Prev() (T, bool) {
	var zero T
	if s.pos == 0 {
		return zero, false
	}
	s.pos--
	return s.items[s.pos], true
}

// Seek. position in [0, Len].
func (s *Sequencer[T]) Seek(pos int) error {
	if pos < 0 || pos > len(s.items) {
		return util.WrapErrorf(ErrPositionOutOfRange, util.ErrBadParamInput, "position %d outside [0, %d]", pos, len(s.items))
	}
	s.pos = pos
	return nil
}

func (s *Sequencer[T]) Reset() {
	s.pos = 0
}

// Play. hands the remaining items to fn one by one, waiting on pace before each. stops on the first error from
// pace (cancellation) or fn. the cursor stays after the last item handed out, so a stopped Play can be resumed.
func (s *Sequencer[T]) Play(ctx context.Context, pace Pacer, fn func(i int, item T) error) error {
	for !s.Done() {
		if err := pace.Wait(ctx); err != nil {
			return err
		}
		i := s.pos
		item, _ := s.Next()
		if err := fn(i, item); err != nil {
			return err
		}
	}
	return nil
}
