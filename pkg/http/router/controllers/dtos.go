package controllers

import (
	"time"

	"github.com/google/uuid"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/engine"
	"github.com/lintang-b-s/algotrace/pkg/gridbuilder"
	"github.com/lintang-b-s/algotrace/pkg/http/usecases"
	"github.com/lintang-b-s/algotrace/pkg/tracecodec"
)

type sortRequest struct {
	Algorithm string    `json:"algorithm" validate:"required"`
	Values    []float64 `json:"values"`
}

type compareSortRequest struct {
	Algorithms []string  `json:"algorithms" validate:"omitempty,dive,required"`
	Values     []float64 `json:"values"`
}

type cellDTO struct {
	Row int `json:"row" validate:"min=0"`
	Col int `json:"col" validate:"min=0"`
}

func (c cellDTO) toCell() gridbuilder.Cell {
	return gridbuilder.Cell{Row: c.Row, Col: c.Col}
}

func newCellDTO(c gridbuilder.Cell) cellDTO {
	return cellDTO{Row: c.Row, Col: c.Col}
}

// gridRequest. either a layout ('.', '#', 'S', 'E' per cell) or rows/cols with markers and walls.
type gridRequest struct {
	Rows   int       `json:"rows" validate:"min=0"`
	Cols   int       `json:"cols" validate:"min=0"`
	Start  *cellDTO  `json:"start" validate:"omitempty"`
	End    *cellDTO  `json:"end" validate:"omitempty"`
	Walls  []cellDTO `json:"walls" validate:"dive"`
	Layout []string  `json:"layout"`
	Snap   bool      `json:"snap"`
}

func (g gridRequest) hasLayout() bool {
	return len(g.Layout) > 0
}

func (g gridRequest) toBoardSpec() usecases.BoardSpec {
	spec := usecases.BoardSpec{
		Rows:   g.Rows,
		Cols:   g.Cols,
		Layout: g.Layout,
		Snap:   g.Snap,
	}
	if g.Start != nil {
		spec.Start = g.Start.toCell()
	}
	if g.End != nil {
		spec.End = g.End.toCell()
	}
	spec.Walls = make([]gridbuilder.Cell, len(g.Walls))
	for i, w := range g.Walls {
		spec.Walls[i] = w.toCell()
	}
	return spec
}

type traverseRequest struct {
	Algorithm string `json:"algorithm" validate:"required"`
	gridRequest
}

type compareTraverseRequest struct {
	Algorithms []string `json:"algorithms" validate:"omitempty,dive,required"`
	gridRequest
}

type generateArrayRequest struct {
	N    int    `validate:"min=0"`
	Min  int    `validate:"ltefield=Max"`
	Max  int    `validate:"-"`
	Seed uint64 `validate:"-"`
}

type generateBoardRequest struct {
	Kind    string  `validate:"oneof=maze random empty"`
	Rows    int     `validate:"min=2"`
	Cols    int     `validate:"min=2"`
	Density float64 `validate:"min=0,max=1"`
	Seed    uint64  `validate:"-"`
}

type sortResponse struct {
	ID         uuid.UUID          `json:"id"`
	Algorithm  string             `json:"algorithm"`
	Input      []float64          `json:"input"`
	Steps      []da.Step[float64] `json:"steps"`
	Sorted     []float64          `json:"sorted"`
	Counts     map[string]int     `json:"counts"`
	TotalSteps int                `json:"total_steps"`
	ElapsedMs  float64            `json:"elapsed_ms"`
}

func stepCounts(counts map[da.StepType]int) map[string]int {
	out := make(map[string]int, len(counts))
	for t, n := range counts {
		out[t.String()] = n
	}
	return out
}

func elapsedMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

func NewSortResponse(run *engine.SortRun) sortResponse {
	return sortResponse{
		ID:         run.ID,
		Algorithm:  run.Algorithm.String(),
		Input:      run.Input,
		Steps:      run.Steps,
		Sorted:     run.Sorted,
		Counts:     stepCounts(run.Counts),
		TotalSteps: len(run.Steps),
		ElapsedMs:  elapsedMs(run.Elapsed),
	}
}

type sortSummary struct {
	ID         uuid.UUID      `json:"id"`
	Algorithm  string         `json:"algorithm"`
	TotalSteps int            `json:"total_steps"`
	Counts     map[string]int `json:"counts"`
	ElapsedMs  float64        `json:"elapsed_ms"`
}

func NewSortSummaries(runs []*engine.SortRun) []sortSummary {
	out := make([]sortSummary, len(runs))
	for i, run := range runs {
		out[i] = sortSummary{
			ID:         run.ID,
			Algorithm:  run.Algorithm.String(),
			TotalSteps: len(run.Steps),
			Counts:     stepCounts(run.Counts),
			ElapsedMs:  elapsedMs(run.Elapsed),
		}
	}
	return out
}

type traverseResponse struct {
	ID           uuid.UUID `json:"id"`
	Algorithm    string    `json:"algorithm"`
	Rows         int       `json:"rows"`
	Cols         int       `json:"cols"`
	Start        cellDTO   `json:"start"`
	End          cellDTO   `json:"end"`
	Visited      []cellDTO `json:"visited"`
	Path         []cellDTO `json:"path"`
	PathPolyline string    `json:"path_polyline"`
	Found        bool      `json:"found"`
	VisitedCount int       `json:"visited_count"`
	PathLength   int       `json:"path_length"`
	Rendered     []string  `json:"rendered"`
	ElapsedMs    float64   `json:"elapsed_ms"`
}

func toCellDTOs(cells []gridbuilder.Cell) []cellDTO {
	out := make([]cellDTO, len(cells))
	for i, c := range cells {
		out[i] = newCellDTO(c)
	}
	return out
}

func NewTraverseResponse(run *engine.PathRun) traverseResponse {
	b := run.Board
	return traverseResponse{
		ID:           run.ID,
		Algorithm:    run.Algorithm.String(),
		Rows:         b.Rows(),
		Cols:         b.Cols(),
		Start:        newCellDTO(b.StartCell()),
		End:          newCellDTO(b.EndCell()),
		Visited:      toCellDTOs(b.Cells(run.Visited)),
		Path:         toCellDTOs(b.Cells(run.Path)),
		PathPolyline: tracecodec.EncodePath(b.Grid(), run.Path),
		Found:        run.Found,
		VisitedCount: len(run.Visited),
		PathLength:   len(run.Path),
		Rendered:     b.Render(),
		ElapsedMs:    elapsedMs(run.Elapsed),
	}
}

type traverseSummary struct {
	ID           uuid.UUID `json:"id"`
	Algorithm    string    `json:"algorithm"`
	Found        bool      `json:"found"`
	VisitedCount int       `json:"visited_count"`
	PathLength   int       `json:"path_length"`
	ElapsedMs    float64   `json:"elapsed_ms"`
}

func NewTraverseSummaries(runs []*engine.PathRun) []traverseSummary {
	out := make([]traverseSummary, len(runs))
	for i, run := range runs {
		out[i] = traverseSummary{
			ID:           run.ID,
			Algorithm:    run.Algorithm.String(),
			Found:        run.Found,
			VisitedCount: len(run.Visited),
			PathLength:   len(run.Path),
			ElapsedMs:    elapsedMs(run.Elapsed),
		}
	}
	return out
}

type algorithmsResponse struct {
	Sorting     []string `json:"sorting"`
	Pathfinding []string `json:"pathfinding"`
	StepTypes   []string `json:"step_types"`
	BoardKinds  []string `json:"board_kinds"`
	MaxArray    int      `json:"max_array_size"`
	MaxCells    int      `json:"max_grid_cells"`
}

type generateArrayResponse struct {
	Values []int  `json:"values"`
	Seed   uint64 `json:"seed"`
}

type boardResponse struct {
	Rows   int       `json:"rows"`
	Cols   int       `json:"cols"`
	Start  cellDTO   `json:"start"`
	End    cellDTO   `json:"end"`
	Walls  []cellDTO `json:"walls"`
	Layout []string  `json:"layout"`
	Seed   uint64    `json:"seed"`
}

func NewBoardResponse(b *gridbuilder.Board, seed uint64) boardResponse {
	return boardResponse{
		Rows:   b.Rows(),
		Cols:   b.Cols(),
		Start:  newCellDTO(b.StartCell()),
		End:    newCellDTO(b.EndCell()),
		Walls:  toCellDTOs(b.Walls()),
		Layout: b.Layout(),
		Seed:   seed,
	}
}

// playbackFrame. one websocket message. sort frames carry a step, path frames a cell.
type playbackFrame struct {
	Index  int               `json:"index"`
	Total  int               `json:"total"`
	Step   *da.Step[float64] `json:"step,omitempty"`
	Values []float64         `json:"values,omitempty"`
	Kind   string            `json:"kind,omitempty"`
	Cell   *cellDTO          `json:"cell,omitempty"`
}

type playbackDone struct {
	Done      bool   `json:"done"`
	Algorithm string `json:"algorithm"`
	Frames    int    `json:"frames"`
	Found     *bool  `json:"found,omitempty"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
