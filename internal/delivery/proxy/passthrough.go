package proxy

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"echofleet/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// hopHeaders are stripped before forwarding in either direction.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// PassthroughHandler forwards non-WebSocket traffic to the backend API.
type PassthroughHandler struct {
	backendURL string
	client     *http.Client
	logger     *slog.Logger
}

// NewPassthroughHandler is the constructor for PassthroughHandler.
func NewPassthroughHandler(backendURL string, client *http.Client, logger *slog.Logger) *PassthroughHandler {
	return &PassthroughHandler{
		backendURL: strings.TrimRight(backendURL, "/"),
		client:     client,
		logger:     logger,
	}
}

// Handle relays the request to the backend, preserving method, path, query,
// headers and body. A backend that times out yields 504; one that cannot be
// reached yields 502.
func (h *PassthroughHandler) Handle(c echo.Context) error {
	req := c.Request()

	target := h.backendURL + req.URL.Path
	if req.URL.RawQuery != "" {
		target += "?" + req.URL.RawQuery
	}

	outbound, err := http.NewRequestWithContext(req.Context(), req.Method, target, req.Body)
	if err != nil {
		return errors.Wrap(err, "failed to build backend request")
	}

	outbound.Header = req.Header.Clone()
	for _, header := range hopHeaders {
		outbound.Header.Del(header)
	}

	resp, err := h.client.Do(outbound)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			h.logger.Warn("backend request timed out", slog.String("path", req.URL.Path))

			return response.ErrorWith(c, http.StatusGatewayTimeout, "gateway_timeout", "backend did not respond in time")
		}

		h.logger.Warn("backend request failed",
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()))

		return response.ErrorWith(c, http.StatusBadGateway, "bad_gateway", "backend is unreachable")
	}
	defer resp.Body.Close()

	header := c.Response().Header()
	for key, values := range resp.Header {
		for _, value := range values {
			header.Add(key, value)
		}
	}
	for _, h := range hopHeaders {
		header.Del(h)
	}

	c.Response().WriteHeader(resp.StatusCode)
	_, err = io.Copy(c.Response(), resp.Body)

	return errors.WithStack(err)
}
