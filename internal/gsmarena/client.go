package gsmarena

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"gsmarena-backend/internal/components/assert"
	"gsmarena-backend/internal/components/telemetry"
	"gsmarena-backend/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseUrl   = "https://www.gsmarena.com/"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// Fetcher retrieves and parses one upstream document. Any failure, including
// a status other than 200, is returned as a *FetchError.
//
// note: fault injection point
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) (*goquery.Document, error)
}

type ClientOptions struct {
	BaseUrl string
	// defaults to DefaultTimeout
	Timeout time.Duration
	// defaults to DefaultUserAgent
	UserAgent string
	// zero disables rate limiting
	RequestsPerSecond float64
	CloudflareBypass  bool
	// optional, exchanges are dumped here when debug logging is enabled
	InstrumentOutput restyutil.InstrumentOutput
}

// Client is the resty backed Fetcher. It performs no retries.
type Client struct {
	baseUrl *url.URL
	http    *resty.Client
}

func NewClient(opts ClientOptions, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel)
	tel = telemetry.NewScopedAPI("gsmarena_client", tel)

	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if baseUrl.Scheme == "" || baseUrl.Host == "" {
		return nil, fmt.Errorf("base url '%s' is not absolute", opts.BaseUrl)
	}

	httpClient := resty.New()
	httpClient.SetTimeout(opts.Timeout)
	httpClient.SetHeader("user-agent", opts.UserAgent)
	httpClient.SetHeader("accept", "text/html,application/xhtml+xml")
	httpClient.SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}

	if opts.RequestsPerSecond > 0 {
		limiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, tel)
	restyutil.InstrumentClient(httpClient, tracer, opts.InstrumentOutput)

	return &Client{
		baseUrl: baseUrl,
		http:    httpClient,
	}, nil
}

func (c *Client) BaseUrl() *url.URL {
	copied := *c.baseUrl
	return &copied
}

// Fetch resolves endpoint against the base url, so both site-relative paths
// and absolute urls are accepted.
func (c *Client) Fetch(ctx context.Context, endpoint string) (*goquery.Document, error) {
	target, err := c.baseUrl.Parse(endpoint)
	if err != nil {
		return nil, &FetchError{Url: endpoint, Err: err}
	}
	link := target.String()

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return nil, &FetchError{Url: link, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &FetchError{Url: link, Status: res.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, &FetchError{Url: link, Status: res.StatusCode(), Err: fmt.Errorf("parse: %w", err)}
	}
	doc.Url = target
	if res.RawResponse != nil && res.RawResponse.Request != nil && res.RawResponse.Request.URL != nil {
		// the final url after redirects
		doc.Url = res.RawResponse.Request.URL
	}
	return doc, nil
}
