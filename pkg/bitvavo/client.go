package bitvavo

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"bitvavo/internal/transport"
	"bitvavo/pkg/core"
)

// Client is a thin binding for the Bitvavo v2 REST API. One method per
// exchange endpoint; signed calls attach HMAC-SHA256 authentication
// headers. All calls share a single pooled HTTP client and may run fully in
// parallel; the client imposes no ordering between them.
//
// Close releases the connection pool; calls made afterwards fail with
// core.ErrClientClosed.
type Client struct {
	config *core.Config
	http   *transport.Client
	signer *Signer
	logger zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger injects a logger used for request/response tracing.
// By default the client logs to stderr at the configured level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client from the given configuration. A nil config uses
// DefaultConfig. Credentials may be absent for a public market-data client;
// signed calls then fail with core.ErrNoCredentials.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || config.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	c := &Client{
		config: config,
		logger: zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http, err = transport.NewClient(config, c.logger)
	if err != nil {
		return nil, err
	}

	if config.Credentials != nil {
		c.signer = NewSigner(*config.Credentials, config.Window)
	}

	return c, nil
}

// Close releases the shared connection pool. Further calls are invalid and
// fail with core.ErrClientClosed.
func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) get(ctx context.Context, resource string, params *core.Params, signed bool) (any, error) {
	return c.call(ctx, http.MethodGet, resource, params, nil, signed)
}

func (c *Client) post(ctx context.Context, resource string, body *core.Params, signed bool) (any, error) {
	return c.call(ctx, http.MethodPost, resource, nil, body, signed)
}

func (c *Client) put(ctx context.Context, resource string, body *core.Params, signed bool) (any, error) {
	return c.call(ctx, http.MethodPut, resource, nil, body, signed)
}

func (c *Client) delete(ctx context.Context, resource string, params *core.Params, signed bool) (any, error) {
	return c.call(ctx, http.MethodDelete, resource, params, nil, signed)
}

// call builds the final resource string, signs it when required, dispatches
// the request, and decodes the response.
//
// The query string is appended in parameter insertion order, and the body is
// marshaled exactly once; the signature and the wire request are built from
// the same bytes.
func (c *Client) call(ctx context.Context, method, resource string, params *core.Params, body *core.Params, signed bool) (any, error) {
	if params.Len() > 0 {
		sep := "?"
		if strings.Contains(resource, "?") {
			sep = "&"
		}
		resource += sep + params.Encode()
	}

	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = sonic.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
	}

	var headers map[string]string
	if signed {
		if c.signer == nil {
			return nil, core.ErrNoCredentials
		}
		headers = c.signer.Sign(method, resource, bodyBytes)
	}

	resp, err := c.http.Do(ctx, method, "/"+resource, bodyBytes, headers)
	if err != nil {
		return nil, err
	}
	return decodeResponse(resp)
}

// decodeResponse parses the response body and classifies the status code.
// An empty body decodes to nil without a parse attempt; a non-JSON body is
// wrapped as {"raw": <text>} rather than dropped. Any status whose leading
// digit is not 2 produces an APIError carrying the code and body.
func decodeResponse(resp *transport.Response) (any, error) {
	var parsed any
	if len(resp.Body) > 0 {
		if err := sonic.Unmarshal(resp.Body, &parsed); err != nil {
			parsed = map[string]any{"raw": string(resp.Body)}
		}
	}

	if resp.StatusCode/100 != 2 {
		return nil, core.NewAPIError(resp.StatusCode, parsed)
	}
	return parsed, nil
}
