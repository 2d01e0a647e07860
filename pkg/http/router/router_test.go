package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/algotrace/pkg/engine"
	"github.com/lintang-b-s/algotrace/pkg/http/usecases"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, useRateLimit bool) http.Handler {
	t.Helper()
	log := zap.NewNop()
	traceEngine := engine.NewEngine(log, engine.Config{MaxArraySize: 100, MaxGridCells: 1000, CompareWorkers: 2})
	api := NewAPI(log)
	return api.Handler(log, useRateLimit, usecases.NewTraceService(log, traceEngine), usecases.NewGeneratorService(log))
}

func TestMiddlewareChain(t *testing.T) {
	h := newTestHandler(t, false)

	testCases := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		wantStatus  int
		wantBody    string
	}{
		{name: "heartbeat", method: http.MethodGet, target: "/healthz", wantStatus: http.StatusOK, wantBody: "."},
		{name: "json body accepted", method: http.MethodPost, target: "/api/sort", contentType: "application/json",
			body: `{"algorithm":"quick","values":[2,1]}`, wantStatus: http.StatusOK, wantBody: `"sorted":[1,2]`},
		{name: "json with charset accepted", method: http.MethodPost, target: "/api/sort",
			contentType: "application/json; charset=utf-8", body: `{"algorithm":"quick","values":[1]}`,
			wantStatus: http.StatusOK},
		{name: "text body rejected", method: http.MethodPost, target: "/api/sort", contentType: "text/plain",
			body: `{"algorithm":"quick"}`, wantStatus: http.StatusUnsupportedMediaType},
		{name: "missing content type", method: http.MethodPost, target: "/api/sort",
			body: `{"algorithm":"quick"}`, wantStatus: http.StatusUnsupportedMediaType},
		{name: "unknown route", method: http.MethodGet, target: "/api/nothing", wantStatus: http.StatusNotFound},
		{name: "metrics", method: http.MethodGet, target: "/metrics", wantStatus: http.StatusOK,
			wantBody: "algotrace_runs_total"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	api := NewAPI(zap.NewNop())
	h := api.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "close", rec.Header().Get("Connection"))
	assert.JSONEq(t, `{"error":{"code":"Internal Server Error","message":"internal server error"}}`, rec.Body.String())
}

func TestRealIP(t *testing.T) {
	testCases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "x-real-ip", headers: map[string]string{"X-Real-IP": "10.0.0.7"}, want: "10.0.0.7"},
		{name: "forwarded chain", headers: map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"},
			want: "203.0.113.9"},
		{name: "garbage ignored", headers: map[string]string{"X-Forwarded-For": "not-an-ip"}, want: "192.0.2.1:1234"},
		{name: "no headers", headers: map[string]string{}, want: "192.0.2.1:1234"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLimit(t *testing.T) {
	viper.Set("RATE_LIMIT_RPS", 0.001)
	viper.Set("RATE_LIMIT_BURST", 2)
	defer viper.Set("RATE_LIMIT_RPS", 20.0)
	defer viper.Set("RATE_LIMIT_BURST", 40)

	h := newTestHandler(t, true)
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/algorithms", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestPlaybackThroughMiddleware(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t, false))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/playback/ws?kind=sort&algorithm=insertion&values=2,1&delay=1ms"
	conn, br, _, err := ws.Dial(ctx, url)
	require.NoError(t, err)
	defer conn.Close()

	var reader io.Reader = conn
	if br != nil {
		reader = io.MultiReader(br, conn)
	}
	rw := struct {
		io.Reader
		io.Writer
	}{reader, conn}

	messages := 0
	for {
		_, err := wsutil.ReadServerText(rw)
		if err != nil {
			break
		}
		messages++
	}
	// insertion on [2,1]: compare, swap, markSorted(1), markSorted(0), then the summary
	assert.Equal(t, 5, messages)
}
