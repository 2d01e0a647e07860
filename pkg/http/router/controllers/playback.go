package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gobwas/ws"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/algotrace/pkg/engine"
	"github.com/lintang-b-s/algotrace/pkg/gridbuilder"
	"github.com/lintang-b-s/algotrace/pkg/playback"
	"go.uber.org/zap"
)

const (
	PLAYBACK_SORT = "sort"
	PLAYBACK_PATH = "path"
)

// playback godoc
//
//	@Summary		stream a recorded trace over a websocket, one frame per tick
//	@Tags			playback
//	@Param			kind		query	string	true	"sort or path"
//	@Param			algorithm	query	string	true	"algorithm name"
//	@Param			values		query	string	false	"comma separated numbers, sort only"
//	@Param			layout		query	string	false	"comma separated layout rows, path only"
//	@Param			delay		query	string	false	"time between frames, e.g. 50ms"
//	@Router			/playback/ws [get]
func (api *traceAPI) playback(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	delay, err := api.queryDelay(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	// the trace is recorded before the upgrade so bad input still gets a plain http error
	frames, done, err := api.recordPlayback(r)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	conn, rw, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("upgrade error", zap.Error(err), zap.String("remote", r.RemoteAddr))
		return
	}
	// hijacked connections keep the server's deadlines
	_ = conn.SetDeadline(time.Time{})

	session := api.hub.Register(conn, rw.Reader)
	defer api.hub.Remove(session)
	api.log.Info("playback started", zap.Uint("session", session.ID()), zap.String("algorithm", done.Algorithm),
		zap.Int("frames", len(frames)), zap.Duration("delay", delay))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go session.drain(cancel)

	seq := playback.NewSequencer(frames)
	err = seq.Play(ctx, playback.NewRatePacer(delay), func(i int, frame playbackFrame) error {
		return session.write(frame)
	})
	if err != nil {
		api.log.Info("playback interrupted", zap.Uint("session", session.ID()), zap.Int("position", seq.Position()),
			zap.Error(err))
		session.close(ws.StatusNormalClosure, "")
		return
	}

	if err := session.write(done); err != nil {
		api.log.Info("playback summary not delivered", zap.Uint("session", session.ID()), zap.Error(err))
	}
	session.close(ws.StatusNormalClosure, "playback finished")
}

func (api *traceAPI) queryDelay(r *http.Request) (time.Duration, error) {
	raw := r.URL.Query().Get("delay")
	if raw == "" {
		return api.playbackDelay, nil
	}
	delay, err := time.ParseDuration(raw)
	if err != nil || delay < 0 {
		return 0, errors.New("delay must be a non negative duration such as 50ms")
	}
	return delay, nil
}

func (api *traceAPI) recordPlayback(r *http.Request) ([]playbackFrame, playbackDone, error) {
	query := r.URL.Query()
	algorithm := query.Get("algorithm")
	if algorithm == "" {
		return nil, playbackDone{}, badRequest("algorithm is required")
	}

	switch query.Get("kind") {
	case PLAYBACK_SORT:
		values, err := parseValues(query.Get("values"))
		if err != nil {
			return nil, playbackDone{}, err
		}
		run, err := api.traceService.Sort(r.Context(), algorithm, values)
		if err != nil {
			return nil, playbackDone{}, err
		}
		frames, err := sortFrames(run)
		if err != nil {
			return nil, playbackDone{}, err
		}
		return frames, playbackDone{Done: true, Algorithm: run.Algorithm.String(), Frames: len(frames)}, nil

	case PLAYBACK_PATH:
		layout := query.Get("layout")
		if layout == "" {
			return nil, playbackDone{}, badRequest("layout is required for path playback")
		}
		board, err := gridbuilder.FromLayout(strings.Split(layout, ","))
		if err != nil {
			return nil, playbackDone{}, err
		}
		run, err := api.traceService.Traverse(r.Context(), algorithm, board)
		if err != nil {
			return nil, playbackDone{}, err
		}
		frames := pathFrames(run)
		found := run.Found
		return frames, playbackDone{Done: true, Algorithm: run.Algorithm.String(), Frames: len(frames),
			Found: &found}, nil

	default:
		return nil, playbackDone{}, badRequest("kind must be sort or path")
	}
}

// sortFrames. one frame per step, each carrying the array as it looks after the step.
func sortFrames(run *engine.SortRun) ([]playbackFrame, error) {
	state := playback.NewSortState(run.Input)
	frames := make([]playbackFrame, len(run.Steps))
	for i := range run.Steps {
		step := run.Steps[i]
		if err := state.Apply(step); err != nil {
			return nil, err
		}
		frames[i] = playbackFrame{
			Index:  i,
			Total:  len(run.Steps),
			Step:   &step,
			Values: state.Values(),
		}
	}
	return frames, nil
}

// pathFrames. visit frames in discovery order followed by path frames from start to end.
func pathFrames(run *engine.PathRun) []playbackFrame {
	state := playback.NewGridState(run.Board.Rows()*run.Board.Cols(), run.Visited, run.Path)
	frames := make([]playbackFrame, state.Len())
	for i, f := range state.Frames() {
		cell := newCellDTO(run.Board.CellOf(f.Index))
		frames[i] = playbackFrame{
			Index: i,
			Total: state.Len(),
			Kind:  f.Kind.String(),
			Cell:  &cell,
		}
	}
	return frames
}

func parseValues(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return []float64{}, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, badRequest(fmt.Sprintf("values[%d] %q is not a number", i, part))
		}
		values[i] = v
	}
	return values, nil
}
