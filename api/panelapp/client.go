package panelapp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ka2n/ppa/log"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

const (
	// DefaultBaseURL is the PanelApp instance queried when no other is configured
	DefaultBaseURL = "https://panelapp.genomicsengland.co.uk"

	// DefaultTimeout bounds a whole request including reading the body
	DefaultTimeout = 30 * time.Second

	genesPath = "api/v1/genes"
)

// Client performs gene lookups against the PanelApp REST API
type Client struct {
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// WithTimeout sets the timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.httpClient.Timeout = d
	}
}

// NewClient creates a client for the PanelApp instance at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, failure.New(ErrInvalidBaseURL,
			failure.Message("Invalid PanelApp base URL"),
			failure.Context{"url": baseURL},
		)
	}

	c := &Client{
		baseURL: u,
		httpClient: &http.Client{
			Transport: log.Transport(),
			Timeout:   DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GenesURL returns the lookup URL for the given gene symbols.
// Symbols are uppercased and joined the way the PanelApp genes endpoint expects.
func (c *Client) GenesURL(genes []string) *url.URL {
	upper := lo.Map(genes, func(g string, _ int) string {
		return strings.ToUpper(g)
	})
	return c.resolve(genesPath + "/" + strings.Join(upper, ", ") + "/")
}

// FetchGenes performs a single GET for the given gene symbols and returns the raw response.
// Any status other than 200 is an error.
func (c *Client) FetchGenes(ctx context.Context, genes []string) (*Response, error) {
	u := c.GenesURL(genes)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	req.Close = true
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, failure.New(ErrRequestFailed,
			failure.Message("Could not contact PanelApp"),
			failure.Context{
				"url":   u.String(),
				"error": err.Error(),
			},
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure.New(ErrRequestFailed,
			failure.Message("Failed to read PanelApp response"),
			failure.Context{
				"url":   u.String(),
				"error": err.Error(),
			},
		)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, failure.New(ErrUnexpectedStatus,
			failure.Message(fmt.Sprintf("Something went wrong with contacting PanelApp - server error %d: %s",
				resp.StatusCode, reasonPhrase(resp))),
			failure.Context{
				"url":    u.String(),
				"status": resp.Status,
			},
		)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    lowerHeaders(resp.Header),
		Body:       body,
	}, nil
}

// EntityURL returns the PanelApp web page listing the panels of a gene
func (c *Client) EntityURL(gene string) *url.URL {
	return c.resolve("panels/entities/" + strings.ToUpper(gene))
}

// resolve appends an unescaped path to the base URL
func (c *Client) resolve(p string) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + p
	u.RawPath = ""
	return &u
}

// reasonPhrase extracts the reason phrase from the status line
func reasonPhrase(resp *http.Response) string {
	code := fmt.Sprintf("%d", resp.StatusCode)
	if reason, ok := strings.CutPrefix(resp.Status, code+" "); ok {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}
