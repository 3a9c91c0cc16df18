// Package nhl wraps the two public NHL APIs: the web API at api-web.nhle.com
// and the stats API at api.nhle.com/stats/rest. Each operation builds its
// URL from the endpoint catalog, performs one GET and normalizes the JSON
// body into records.
package nhl

import (
	"time"

	"github.com/tonyprice/nhldata/transport"
)

const (
	defaultWebBaseURL   = "https://api-web.nhle.com"
	defaultStatsBaseURL = "https://api.nhle.com/stats/rest"
)

// Client holds the transport and the base URLs shared by both connectors.
type Client struct {
	transport *transport.Client
	webBase   string
	statsBase string
	version   string
	lang      string
}

type Option func(*Client)

// WithTimeout sets the transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.transport = transport.NewClient(d) }
}

// WithBaseURLs overrides both API hosts. Used by tests.
func WithBaseURLs(web, stats string) Option {
	return func(c *Client) {
		c.webBase = web
		c.statsBase = stats
	}
}

// WithLanguage sets the stats API response language, "en" by default.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.lang = lang }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		transport: transport.NewClient(0),
		webBase:   defaultWebBaseURL,
		statsBase: defaultStatsBaseURL,
		version:   "v1",
		lang:      "en",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) getWeb(path string) ([]byte, error) {
	return c.transport.Get(c.webBase + "/" + c.version + "/" + path)
}

func (c *Client) getStats(path string) ([]byte, error) {
	return c.transport.Get(c.statsBase + "/" + c.lang + "/" + path)
}
