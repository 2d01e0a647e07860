package playback

import (
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/util"
)

type FrameKind uint8

const (
	VISIT_FRAME FrameKind = iota
	PATH_FRAME
)

func (k FrameKind) String() string {
	if k == PATH_FRAME {
		return "path"
	}
	return "visit"
}

type Frame struct {
	Kind  FrameKind
	Index da.Index
}

// GridState. the animation of one search: every visit in order, then the path cells (only when a path was found).
type GridState struct {
	numCells int
	frames   []Frame
	found    bool
}

func NewGridState(numCells int, visited, path []da.Index) *GridState {
	found := len(path) > 1
	frames := make([]Frame, 0, len(visited)+len(path))
	for _, idx := range visited {
		frames = append(frames, Frame{Kind: VISIT_FRAME, Index: idx})
	}
	if found {
		for _, idx := range path {
			frames = append(frames, Frame{Kind: PATH_FRAME, Index: idx})
		}
	}
	return &GridState{numCells: numCells, frames: frames, found: found}
}

func (gs *GridState) Len() int {
	return len(gs.frames)
}

func (gs *GridState) Frames() []Frame {
	return gs.frames
}

// Found. false means the "no path" outcome: the end was never reached.
func (gs *GridState) Found() bool {
	return gs.found
}

func (gs *GridState) Sequencer() *Sequencer[Frame] {
	return NewSequencer(gs.frames)
}

type GridSnapshot struct {
	Visited []bool
	Path    []bool
	// Current is the cell of the last shown frame, INVALID_NODE_ID before the first one.
	Current da.Index
}

// Frame. what the grid looks like after the first k frames.
func (gs *GridState) Frame(k int) (GridSnapshot, error) {
	if k < 0 || k > len(gs.frames) {
		return GridSnapshot{}, util.WrapErrorf(ErrPositionOutOfRange, util.ErrBadParamInput, "frame %d outside [0, %d]",
			k, len(gs.frames))
	}
	snap := GridSnapshot{
		Visited: make([]bool, gs.numCells),
		Path:    make([]bool, gs.numCells),
		Current: da.INVALID_NODE_ID,
	}
	for _, f := range gs.frames[:k] {
		if int(f.Index) >= gs.numCells {
			continue
		}
		if f.Kind == PATH_FRAME {
			snap.Path[f.Index] = true
		} else {
			snap.Visited[f.Index] = true
		}
		snap.Current = f.Index
	}
	return snap, nil
}
