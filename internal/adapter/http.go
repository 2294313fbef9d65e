package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

const (
	usersPath     = "/users"
	pingPath      = "/ping"
	traceIDHeader = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// address may omit the scheme, in which case http is assumed. A
// non-positive timeout leaves requests unbounded.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request starts a request bound to ctx, forwarding the trace id carried
// by ctx.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	return req
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.request(ctx).Get(pingPath)
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(req).
		Post(usersPath)
	if err != nil {
		return fmt.Errorf("create user request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetUser maps a 404 to both [ErrNotFound] and [ErrUserNotFound].
func (h *httpServerAdapter) GetUser(ctx context.Context, phone string) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.request(ctx).
		SetQueryParam("phone", phone).
		SetResult(&user).
		Get(usersPath)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if resp.StatusCode() == http.StatusNotFound {
			return models.PublicUser{}, fmt.Errorf("%w: %w", err, ErrUserNotFound)
		}
		return models.PublicUser{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, req models.UpdateUserRequest) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(req).
		Put(usersPath)
	if err != nil {
		return fmt.Errorf("update user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, phone string) error {
	resp, err := h.request(ctx).
		SetQueryParam("phone", phone).
		Delete(usersPath)
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}
