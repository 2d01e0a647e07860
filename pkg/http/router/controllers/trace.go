package controllers

import (
	"errors"
	"net/http"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/algotrace/pkg"
	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/engine/pathfinding"
	"github.com/lintang-b-s/algotrace/pkg/engine/sorting"
	"github.com/lintang-b-s/algotrace/pkg/gridbuilder"
	helper "github.com/lintang-b-s/algotrace/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/algotrace/pkg/http/usecases"
	"github.com/lintang-b-s/algotrace/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

type traceAPI struct {
	traceService     TraceService
	generatorService GeneratorService
	hub              *Hub
	log              *zap.Logger

	validate      *validator.Validate
	trans         ut.Translator
	playbackDelay time.Duration
	newSeed       func() uint64
}

func New(traceService TraceService, generatorService GeneratorService, hub *Hub, log *zap.Logger,
	playbackDelay time.Duration) *traceAPI {
	validate, trans := newValidator()
	seeds := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	return &traceAPI{
		traceService:     traceService,
		generatorService: generatorService,
		hub:              hub,
		log:              log,
		validate:         validate,
		trans:            trans,
		playbackDelay:    playbackDelay,
		newSeed:          seeds.Uint64,
	}
}

func (api *traceAPI) Routes(group *helper.RouteGroup) {
	group.GET("/algorithms", api.algorithms)
	group.POST("/sort", api.sort)
	group.POST("/traverse", api.traverse)
	group.POST("/compare/sort", api.compareSort)
	group.POST("/compare/traverse", api.compareTraverse)
	group.GET("/generate/array", api.generateArray)
	group.GET("/generate/board", api.generateBoard)
	group.GET("/playback/ws", api.playback)
}

// algorithms godoc
//
//	@Summary		list supported algorithms and limits
//	@Tags			trace
//	@Produce		json
//	@Router			/algorithms [get]
func (api *traceAPI) algorithms(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	limits := api.traceService.Limits()
	resp := algorithmsResponse{
		Sorting:     sorting.AlgorithmNames(),
		Pathfinding: pathfinding.AlgorithmNames(),
		StepTypes: []string{da.COMPARE.String(), da.SWAP.String(), da.OVERWRITE.String(),
			da.MARK_SORTED.String()},
		BoardKinds: []string{usecases.BOARD_EMPTY, usecases.BOARD_RANDOM, usecases.BOARD_MAZE},
		MaxArray:   limits.MaxArraySize,
		MaxCells:   limits.MaxGridCells,
	}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// sort godoc
//
//	@Summary		record the step trace of a sorting algorithm
//	@Tags			trace
//	@Accept			json
//	@Produce		json
//	@Router			/sort [post]
func (api *traceAPI) sort(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request sortRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	run, err := api.traceService.Sort(r.Context(), request.Algorithm, request.Values)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewSortResponse(run)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// compareSort godoc
//
//	@Summary		run several sorting algorithms on the same array
//	@Tags			trace
//	@Accept			json
//	@Produce		json
//	@Router			/compare/sort [post]
func (api *traceAPI) compareSort(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request compareSortRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	runs, err := api.traceService.CompareSort(r.Context(), request.Algorithms, request.Values)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewSortSummaries(runs)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// traverse godoc
//
//	@Summary		record the visit order and path of a pathfinding algorithm
//	@Tags			trace
//	@Accept			json
//	@Produce		json
//	@Router			/traverse [post]
func (api *traceAPI) traverse(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request traverseRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	board, err := api.buildBoard(request.gridRequest)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	run, err := api.traceService.Traverse(r.Context(), request.Algorithm, board)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewTraverseResponse(run)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// compareTraverse godoc
//
//	@Summary		run several pathfinding algorithms on the same grid
//	@Tags			trace
//	@Accept			json
//	@Produce		json
//	@Router			/compare/traverse [post]
func (api *traceAPI) compareTraverse(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request compareTraverseRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	board, err := api.buildBoard(request.gridRequest)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	runs, err := api.traceService.CompareTraverse(r.Context(), request.Algorithms, board)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewTraverseSummaries(runs)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *traceAPI) buildBoard(request gridRequest) (*gridbuilder.Board, error) {
	if !request.hasLayout() && (request.Start == nil || request.End == nil) {
		return nil, util.WrapErrorf(gridbuilder.ErrInvalidLayout, util.ErrBadParamInput,
			"either layout or start and end are required")
	}
	return api.traceService.BuildBoard(request.toBoardSpec())
}

// generateArray godoc
//
//	@Summary		seeded random array
//	@Tags			generate
//	@Produce		json
//	@Param			n		query	int	false	"number of values"
//	@Param			min		query	int	false	"smallest value"
//	@Param			max		query	int	false	"largest value"
//	@Param			seed	query	int	false	"random seed"
//	@Router			/generate/array [get]
func (api *traceAPI) generateArray(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request generateArrayRequest
		err     error
	)
	if request.N, err = queryInt(r, "n", pkg.DEFAULT_ARRAY_SIZE); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.Min, err = queryInt(r, "min", pkg.DEFAULT_ARRAY_MIN); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.Max, err = queryInt(r, "max", pkg.DEFAULT_ARRAY_MAX); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.Seed, err = api.querySeed(r); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if limit := api.traceService.Limits().MaxArraySize; limit > 0 && request.N > limit {
		api.BadRequestResponse(w, r, errArrayTooLarge)
		return
	}

	values, err := api.generatorService.RandomArray(request.N, request.Min, request.Max, request.Seed)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	resp := generateArrayResponse{Values: values, Seed: request.Seed}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// generateBoard godoc
//
//	@Summary		seeded board, empty, random walls or a maze
//	@Tags			generate
//	@Produce		json
//	@Param			kind	query	string	false	"empty, random or maze"
//	@Param			rows	query	int		false	"rows"
//	@Param			cols	query	int		false	"columns"
//	@Param			density	query	number	false	"wall probability for random boards"
//	@Param			seed	query	int		false	"random seed"
//	@Router			/generate/board [get]
func (api *traceAPI) generateBoard(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request generateBoardRequest
		err     error
	)
	request.Kind = r.URL.Query().Get("kind")
	if request.Kind == "" {
		request.Kind = usecases.BOARD_MAZE
	}
	if request.Rows, err = queryInt(r, "rows", pkg.DEFAULT_GRID_ROWS); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.Cols, err = queryInt(r, "cols", pkg.DEFAULT_GRID_COLS); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.Density, err = queryFloat(r, "density", pkg.DEFAULT_WALL_DENSITY); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.Seed, err = api.querySeed(r); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if limit := api.traceService.Limits().MaxGridCells; limit > 0 && request.Rows*request.Cols > limit {
		api.BadRequestResponse(w, r, errBoardTooLarge)
		return
	}

	board, err := api.generatorService.GenerateBoard(request.Kind, request.Rows, request.Cols, request.Density,
		request.Seed)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewBoardResponse(board, request.Seed)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

var (
	errArrayTooLarge = errors.New("n exceeds the maximum array size")
	errBoardTooLarge = errors.New("rows * cols exceeds the maximum grid size")
)
