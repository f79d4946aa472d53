package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxResponseSize caps how much of an upstream body is read into memory.
const maxResponseSize = 8 << 20

// Response is a raw upstream reply.
type Response struct {
	Status int
	Body   []byte
}

// Transport performs a GET against an upstream endpoint path such as
// "/v1/account/Name/Tag".
type Transport interface {
	Get(ctx context.Context, endpoint string) (*Response, error)
}

// NewHTTPClient returns the client shared by both transports.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Upstream talks to the stats API directly and attaches the API key.
type Upstream struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewUpstream(baseURL, apiKey string, client *http.Client) *Upstream {
	return &Upstream{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// Configured reports whether a key is available for injection.
func (u *Upstream) Configured() bool {
	return u != nil && u.apiKey != ""
}

// Get forwards the request with the key in the Authorization header and
// returns the upstream status and body unchanged.
func (u *Upstream) Get(ctx context.Context, endpoint string) (*Response, error) {
	if !u.Configured() {
		return nil, ErrMissingAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", u.apiKey)
	req.Header.Set("Accept", "application/json")

	return do(u.client, req)
}

// ProxyTransport posts {"endpoint": ...} to the key-injecting proxy, so the
// key never leaves the proxy.
type ProxyTransport struct {
	url    string
	client *http.Client
}

func NewProxyTransport(url string, client *http.Client) *ProxyTransport {
	return &ProxyTransport{url: url, client: client}
}

type proxyPayload struct {
	Endpoint string `json:"endpoint"`
}

func (p *ProxyTransport) Get(ctx context.Context, endpoint string) (*Response, error) {
	payload, err := json.Marshal(proxyPayload{Endpoint: endpoint})
	if err != nil {
		return nil, fmt.Errorf("encode proxy payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return do(p.client, req)
}

func do(client *http.Client, req *http.Request) (*Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Response{Status: resp.StatusCode, Body: body}, nil
}
