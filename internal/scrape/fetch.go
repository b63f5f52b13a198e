package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// FetchResult is one attempt's outcome. Blocked means the body (or status)
// carried an anti-automation signal; the caller must treat it like a failed
// fetch and move on to the next candidate URL.
type FetchResult struct {
	Status  int
	Body    string
	Blocked bool
}

// Fetcher is what the pipeline drives; swapped for a stub in tests.
type Fetcher interface {
	Fetch(ctx context.Context, target string) (FetchResult, error)
}

// Substrings that mark a challenge page, rate-limit notice, or block page.
// Checked case-insensitively against the whole body.
var blockSignals = []string{
	"security challenge",
	"unusual activity",
	"captcha",
	"blocked",
}

var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Referer":                   "https://www.google.com/",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "cross-site",
	"Cache-Control":             "max-age=0",
}

// Client fetches search pages with a browser TLS fingerprint. One GET per
// call; retry lives at the pipeline level via the URL fallback chain.
type Client struct {
	http    tls_client.HttpClient
	limiter *HostLimiter

	// Cookie returns an optional session cookie value; "" disables it.
	Cookie func() string
}

func NewClient(timeoutSeconds int, limiter *HostLimiter) (*Client, error) {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 25
	}
	jar, _ := fhttpcookiejar.New(nil)

	hc, err := tls_client.NewHttpClient(
		tls_client.NewNoopLogger(),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(timeoutSeconds),
		tls_client.WithCookieJar(jar),
	)
	if err != nil {
		return nil, err
	}

	return &Client{http: hc, limiter: limiter}, nil
}

func (c *Client) Fetch(ctx context.Context, target string) (FetchResult, error) {
	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, target); err != nil {
			return FetchResult{}, err
		}
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return FetchResult{}, err
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}
	if c.Cookie != nil {
		if ck := c.Cookie(); ck != "" {
			req.Header.Set("Cookie", "li_at="+ck)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return FetchResult{}, err
	}
	defer resp.Body.Close()

	// 5xx is a hard failure for this attempt. 4xx is not: block pages often
	// come back as 4xx and we still need the body to classify them.
	if resp.StatusCode >= 500 {
		return FetchResult{Status: resp.StatusCode}, fmt.Errorf("http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FetchResult{Status: resp.StatusCode}, err
	}

	res := FetchResult{Status: resp.StatusCode, Body: string(body)}
	res.Blocked = resp.StatusCode == http.StatusTooManyRequests || containsBlockSignal(res.Body)
	return res, nil
}

func containsBlockSignal(body string) bool {
	lower := strings.ToLower(body)
	for _, sig := range blockSignals {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}
