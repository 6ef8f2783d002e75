package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Client is the OMDb API client.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a new OMDb API client.
func NewClient(apiKey, baseURL string, log *zap.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log.With(zap.String("client", "omdb")),
	}
}

// Movie is an OMDb title-lookup record. Field names keep OMDb's
// capitalization; the frontend forwards them verbatim into add-movie.
type Movie struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Poster     string `json:"Poster"`
	Plot       string `json:"Plot"`
	Genre      string `json:"Genre"`
	ImdbRating string `json:"imdbRating"`
	Runtime    string `json:"Runtime"`
	Actors     string `json:"Actors"`
	Response   string `json:"Response"`
}

// FindByTitle looks a single title up. A miss (OMDb "Response":"False")
// returns nil, nil; transport and decode failures return an error so the
// caller can degrade instead of failing the request.
func (c *Client) FindByTitle(ctx context.Context, title string) (*Movie, error) {
	lookupURL := fmt.Sprintf("%s/?apikey=%s&t=%s",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build OMDb request: %w", err)
	}

	c.log.Debug("fetching OMDb title", zap.String("title", title))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OMDb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OMDb returned status %d", resp.StatusCode)
	}

	var movie Movie
	if err := json.NewDecoder(resp.Body).Decode(&movie); err != nil {
		return nil, fmt.Errorf("failed to decode OMDb response: %w", err)
	}

	if movie.Response != "True" {
		return nil, nil
	}

	return &movie, nil
}
