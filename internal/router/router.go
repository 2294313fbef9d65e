// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router dispatches transport-independent requests to handlers.
//
// A [Router] is built once at startup and shared by every transport. It
// selects a handler by exact match on the normalized path, falls back to a
// not-found handler, and turns the returned [models.Response] into a status
// code and a JSON object body.
package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

// HandlerFunc handles one dispatched request and returns exactly one response.
type HandlerFunc func(ctx context.Context, req models.Request) models.Response

// Observer receives the outcome of every dispatch.
type Observer interface {
	Observe(route, method string, status int, elapsed time.Duration)
}

// NotFoundRoute is the route label reported for unmatched paths.
const NotFoundRoute = "notFound"

var emptyObject = []byte("{}")

// Router is the routing table plus response shaping. Routes must be
// registered before the first Dispatch; the table is read-only afterwards.
type Router struct {
	routes   map[string]HandlerFunc
	notFound HandlerFunc
	observer Observer
	logger   *logger.Logger
}

// Option configures a [Router].
type Option func(*Router)

// WithNotFound replaces the default not-found handler (404, empty object).
func WithNotFound(fn HandlerFunc) Option {
	return func(r *Router) {
		r.notFound = fn
	}
}

// WithObserver reports every dispatch to o.
func WithObserver(o Observer) Option {
	return func(r *Router) {
		r.observer = o
	}
}

// New returns an empty [Router].
func New(log *logger.Logger, opts ...Option) *Router {
	r := &Router{
		routes: make(map[string]HandlerFunc),
		notFound: func(context.Context, models.Request) models.Response {
			return models.Response{StatusCode: http.StatusNotFound}
		},
		logger: log,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Handle registers fn under the normalized path.
func (r *Router) Handle(path string, fn HandlerFunc) {
	r.routes[NormalizePath(path)] = fn
}

// Dispatch runs the handler registered for req.Path. A panicking handler
// yields 500 with an empty object.
func (r *Router) Dispatch(ctx context.Context, req models.Request) (resp models.Response) {
	start := time.Now()
	req.Path = NormalizePath(req.Path)

	route := req.Path
	handler, ok := r.routes[req.Path]
	if !ok {
		route, handler = NotFoundRoute, r.notFound
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.log(ctx).Error().Interface("panic", rec).Str("route", route).Msg("handler panicked")
			resp = models.Response{StatusCode: http.StatusInternalServerError}
		}

		if r.observer != nil {
			r.observer.Observe(route, req.Method, normalizeStatus(resp.StatusCode), time.Since(start))
		}
	}()

	return handler(ctx, req)
}

// Encode applies the response defaults: an out of range status becomes 200,
// and a payload that does not serialize to a JSON object becomes {}.
func (r *Router) Encode(resp models.Response) (int, []byte) {
	return normalizeStatus(resp.StatusCode), encodePayload(resp.Payload)
}

// Serve dispatches req, encodes the result and logs the outbound response.
func (r *Router) Serve(ctx context.Context, req models.Request) (int, []byte) {
	status, body := r.Encode(r.Dispatch(ctx, req))

	r.log(ctx).Info().
		Int("status", status).
		RawJSON("body", body).
		Msg("returning response")

	return status, body
}

// log prefers the request-scoped logger and falls back to the router's own.
func (r *Router) log(ctx context.Context) *logger.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return &logger.Logger{Logger: *l}
	}

	return r.logger
}

// NewRequest builds a [models.Request] with the normalized path, the first
// value of every query key and the lower-cased method.
func NewRequest(path string, query url.Values, method string, headers http.Header, body string) models.Request {
	q := make(map[string]string, len(query))
	for k, v := range query {
		if len(v) > 0 {
			q[k] = v[0]
		}
	}

	if headers == nil {
		headers = make(http.Header)
	}

	return models.Request{
		Path:    NormalizePath(path),
		Query:   q,
		Method:  strings.ToLower(method),
		Headers: headers,
		Body:    body,
	}
}

// NormalizePath strips leading and trailing slashes.
func NormalizePath(path string) string {
	return strings.Trim(path, "/")
}

func normalizeStatus(status int) int {
	if status < 100 || status > 999 {
		return http.StatusOK
	}

	return status
}

func encodePayload(payload any) []byte {
	if payload == nil {
		return emptyObject
	}

	body, err := json.Marshal(payload)
	if err != nil || len(body) == 0 || body[0] != '{' {
		return emptyObject
	}

	return body
}
