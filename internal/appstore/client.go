package appstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/omatviiv/appstore-ratings/pkg/models"
)

const (
	defaultBaseURL = "https://apps.apple.com"
	requestTimeout = 15 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/129.0.0.0 Safari/537.36"
	acceptLanguage = "en-US,en;q=0.9"
)

// Client fetches public App Store product pages.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient builds a product page client. An empty baseURL selects the
// public App Store host.
func NewClient(baseURL string, log *zap.Logger) *Client {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = defaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(u, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		log:        log,
	}
}

// FetchProductRatings downloads the product page for the given app and
// storefront and extracts its rating summary.
func (c *Client) FetchProductRatings(ctx context.Context, appID, country string) (*models.RatingSummary, error) {
	endpoint := fmt.Sprintf("%s/%s/app/id%s",
		c.baseURL, url.PathEscape(country), url.PathEscape(appID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build product page request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	c.log.Debug("fetching product page", zap.String("url", endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to fetch App Store page")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to fetch App Store page")
	}

	c.log.Debug("product page fetched",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)))

	return ExtractProductRatings(string(body))
}
