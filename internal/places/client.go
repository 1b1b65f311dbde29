// Package places fetches public customer reviews of the restaurant from
// SerpApi's Google Maps reviews engine.
package places

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const DefaultBaseURL = "https://serpapi.com"

var ErrNotConfigured = errors.New("places: search api key or place id missing")

type Review struct {
	Rating  float64
	Snippet string
}

type Client struct {
	apiKey  string
	placeID string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, placeID, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		placeID: placeID,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != "" && c.placeID != ""
}

// Reviews returns the first page of reviews. Entries without text are skipped.
func (c *Client) Reviews(ctx context.Context) ([]Review, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("engine", "google_maps_reviews")
	q.Set("data_id", c.placeID)
	q.Set("hl", "fr")
	q.Set("sort_by", "newestFirst")
	q.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi: status %d", resp.StatusCode)
	}
	if msg := gjson.GetBytes(raw, "error"); msg.Exists() {
		return nil, fmt.Errorf("serpapi: %s", msg.String())
	}

	var reviews []Review
	gjson.GetBytes(raw, "reviews").ForEach(func(_, r gjson.Result) bool {
		snippet := strings.TrimSpace(r.Get("snippet").String())
		if snippet == "" {
			snippet = strings.TrimSpace(r.Get("extracted_snippet.original").String())
		}
		if snippet != "" {
			reviews = append(reviews, Review{Rating: r.Get("rating").Float(), Snippet: snippet})
		}
		return true
	})

	return reviews, nil
}
