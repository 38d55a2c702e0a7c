package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// Client drives a remote simulation server.
type Client struct {
	BaseURL string
}

// NewClient builds a Client for the server at baseURL, e.g.
// "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/")}
}

// SubmitSimulation posts one run and returns its full Result.
func (c *Client) SubmitSimulation(req *SimulateRequest) (*sim.Result, error) {
	url := fmt.Sprintf("%s/api/v1/simulate", c.BaseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		logrus.Errorf("submitting simulation to %s: %v", url, err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError("simulate", resp)
	}
	var res sim.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}
	return &res, nil
}

// ListPolicies fetches the policy names the server can resolve.
func (c *Client) ListPolicies() ([]string, error) {
	url := fmt.Sprintf("%s/api/v1/policies", c.BaseURL)

	resp, err := http.Get(url)
	if err != nil {
		logrus.Errorf("listing policies from %s: %v", url, err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError("policies", resp)
	}
	var out PoliciesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding policies: %w", err)
	}
	return out.Policies, nil
}

// Health reports whether the server answers its liveness probe.
func (c *Client) Health() error {
	url := fmt.Sprintf("%s/healthz", c.BaseURL)

	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status %d", resp.StatusCode)
	}
	return nil
}

// remoteError turns a non-200 reply into an error carrying the server's
// message when one was sent.
func remoteError(op string, resp *http.Response) error {
	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return fmt.Errorf("%s failed with status %d", op, resp.StatusCode)
	}
	return fmt.Errorf("%s failed with status %d: %s", op, resp.StatusCode, body.Error)
}
