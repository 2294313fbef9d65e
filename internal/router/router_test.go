package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

type observation struct {
	route  string
	method string
	status int
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) Observe(route, method string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{route: route, method: method, status: status})
}

func staticHandler(resp models.Response) HandlerFunc {
	return func(context.Context, models.Request) models.Response {
		return resp
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/users", "users"},
		{"users/", "users"},
		{"//users//", "users"},
		{"/api/users/", "api/users"},
		{"", ""},
		{"/", ""},
		{"Users", "Users"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.in))
		})
	}
}

func TestNewRequest(t *testing.T) {
	headers := http.Header{"X-Custom": []string{"a", "b"}}
	query := url.Values{"phone": []string{"5551234567", "0000000000"}, "empty": nil}

	req := NewRequest("/users/", query, "GET", headers, `{"a":1}`)

	assert.Equal(t, "users", req.Path)
	assert.Equal(t, "get", req.Method)
	assert.Equal(t, map[string]string{"phone": "5551234567"}, req.Query)
	assert.Equal(t, headers, req.Headers)
	assert.Equal(t, `{"a":1}`, req.Body)
}

func TestNewRequest_NilHeaders(t *testing.T) {
	req := NewRequest("ping", nil, "POST", nil, "")

	assert.NotNil(t, req.Headers)
	assert.Empty(t, req.Query)
	assert.Equal(t, "post", req.Method)
}

func TestRouter_Dispatch_ExactMatch(t *testing.T) {
	r := New(logger.Nop())
	r.Handle("/users", staticHandler(models.Response{StatusCode: http.StatusCreated}))

	resp := r.Dispatch(context.Background(), models.Request{Path: "users/"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRouter_Dispatch_NotFound(t *testing.T) {
	r := New(logger.Nop())
	r.Handle("users", staticHandler(models.Response{StatusCode: http.StatusOK}))

	for _, path := range []string{"Users", "users/extra", "", "nope"} {
		t.Run(path, func(t *testing.T) {
			status, body := r.Encode(r.Dispatch(context.Background(), models.Request{Path: path}))
			assert.Equal(t, http.StatusNotFound, status)
			assert.JSONEq(t, `{}`, string(body))
		})
	}
}

func TestRouter_Dispatch_CustomNotFound(t *testing.T) {
	r := New(logger.Nop(), WithNotFound(staticHandler(models.NewErrorResponse(http.StatusNotFound, "nothing here"))))

	resp := r.Dispatch(context.Background(), models.Request{Path: "missing"})
	assert.Equal(t, models.NewErrorResponse(http.StatusNotFound, "nothing here"), resp)
}

func TestRouter_Dispatch_PassesNormalizedRequest(t *testing.T) {
	r := New(logger.Nop())

	var got models.Request
	r.Handle("users", func(_ context.Context, req models.Request) models.Response {
		got = req
		return models.Response{}
	})

	r.Dispatch(context.Background(), models.Request{Path: "/users/", Method: "get", Query: map[string]string{"phone": "1"}})

	assert.Equal(t, "users", got.Path)
	assert.Equal(t, "get", got.Method)
	assert.Equal(t, "1", got.Query["phone"])
}

func TestRouter_Dispatch_RecoversPanic(t *testing.T) {
	obs := &recordingObserver{}
	r := New(logger.Nop(), WithObserver(obs))
	r.Handle("boom", func(context.Context, models.Request) models.Response {
		panic("boom")
	})

	resp := r.Dispatch(context.Background(), models.Request{Path: "boom", Method: "get"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Nil(t, resp.Payload)
	require.Len(t, obs.seen, 1)
	assert.Equal(t, observation{route: "boom", method: "get", status: http.StatusInternalServerError}, obs.seen[0])
}

func TestRouter_Dispatch_Observer(t *testing.T) {
	obs := &recordingObserver{}
	r := New(logger.Nop(), WithObserver(obs))
	r.Handle("ping", staticHandler(models.Response{}))

	r.Dispatch(context.Background(), models.Request{Path: "ping", Method: "get"})
	r.Dispatch(context.Background(), models.Request{Path: "missing", Method: "post"})

	assert.Equal(t, []observation{
		{route: "ping", method: "get", status: http.StatusOK},
		{route: NotFoundRoute, method: "post", status: http.StatusNotFound},
	}, obs.seen)
}

func TestRouter_Encode(t *testing.T) {
	r := New(logger.Nop())

	tests := []struct {
		name       string
		resp       models.Response
		wantStatus int
		wantBody   string
	}{
		{name: "zero value", resp: models.Response{}, wantStatus: 200, wantBody: `{}`},
		{name: "negative status", resp: models.Response{StatusCode: -1}, wantStatus: 200, wantBody: `{}`},
		{name: "status too large", resp: models.Response{StatusCode: 1000}, wantStatus: 200, wantBody: `{}`},
		{name: "status kept", resp: models.Response{StatusCode: 418}, wantStatus: 418, wantBody: `{}`},
		{name: "error payload", resp: models.NewErrorResponse(400, "Missing required field"), wantStatus: 400, wantBody: `{"Error":"Missing required field"}`},
		{name: "map payload", resp: models.Response{Payload: map[string]any{"a": 1}}, wantStatus: 200, wantBody: `{"a":1}`},
		{name: "string payload", resp: models.Response{Payload: "text"}, wantStatus: 200, wantBody: `{}`},
		{name: "slice payload", resp: models.Response{Payload: []int{1, 2}}, wantStatus: 200, wantBody: `{}`},
		{name: "number payload", resp: models.Response{Payload: 42}, wantStatus: 200, wantBody: `{}`},
		{name: "nil map payload", resp: models.Response{Payload: map[string]any(nil)}, wantStatus: 200, wantBody: `{}`},
		{name: "unserializable payload", resp: models.Response{Payload: map[string]any{"ch": make(chan int)}}, wantStatus: 200, wantBody: `{}`},
		{name: "public user", resp: models.Response{Payload: models.PublicUser{Phone: "5551234567"}}, wantStatus: 200,
			wantBody: `{"firstName":"","lastName":"","phone":"5551234567","tosAgreement":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := r.Encode(tt.resp)
			assert.Equal(t, tt.wantStatus, status)
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}

func TestRouter_Serve_LogsResponse(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.InfoLevel)}
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	r := New(logger.Nop())
	r.Handle("users", staticHandler(models.NewErrorResponse(http.StatusBadRequest, "Missing required fields")))

	ctx := l.WithContext(context.Background())
	status, body := r.Serve(ctx, models.Request{Path: "users", Method: "post"})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"Error":"Missing required fields"}`, string(body))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "returning response", entry["message"])
	assert.EqualValues(t, http.StatusBadRequest, entry["status"])
	assert.Equal(t, map[string]any{"Error": "Missing required fields"}, entry["body"])
}

func TestRouter_Serve_FallsBackToRouterLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	r := New(&logger.Logger{Logger: zerolog.New(&buf)})

	status, body := r.Serve(context.Background(), models.Request{Path: "missing"})

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "{}", string(body))
	assert.Contains(t, buf.String(), "returning response")
}

func TestRouter_ConcurrentDispatch(t *testing.T) {
	r := New(logger.Nop())
	r.Handle("ping", staticHandler(models.Response{}))

	var wg sync.WaitGroup
	for j := 0; j < 32; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, _ := r.Encode(r.Dispatch(context.Background(), models.Request{Path: "ping"}))
			assert.Equal(t, http.StatusOK, status)
		}()
	}
	wg.Wait()
}
