package docker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"echofleet/internal/domain/service"
)

const probeTimeout = 5 * time.Second

// httpProber implements the service.HealthProber interface by issuing a
// plain GET against the instance's published port. Any HTTP response, even
// an error status, proves the process is up and listening.
type httpProber struct {
	client *http.Client
}

// NewHTTPProber is the constructor for the HTTP health prober.
func NewHTTPProber() service.HealthProber {
	return &httpProber{
		client: &http.Client{Timeout: probeTimeout},
	}
}

// Reachable reports whether the instance on the given host port answers HTTP.
func (p *httpProber) Reachable(ctx context.Context, port int) bool {
	url := fmt.Sprintf("http://localhost:%d/", port)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return true
}
