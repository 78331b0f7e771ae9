package codewars

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"portfolio-stats/internal/cache"
)

const (
	defaultBaseURL = "https://www.codewars.com/api/v1"

	// The completed-challenges endpoint serves 200 items per page; a short
	// page marks the end.
	challengePageSize = 200
	maxChallengePages = 5
)

type Client struct {
	httpClient *http.Client
	cache      *cache.Cache
	baseURL    string
	ctx        context.Context
}

func NewClient(ctx context.Context, c *cache.Cache) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      c,
		baseURL:    defaultBaseURL,
		ctx:        ctx,
	}
}

func (c *Client) GetUser(username string) (*User, error) {
	v, err := c.cache.Fetch("codewars:user:"+username, 0, func() (interface{}, error) {
		var user User
		url := fmt.Sprintf("%s/users/%s", c.baseURL, username)
		if err := c.getJSON(url, &user); err != nil {
			return nil, fmt.Errorf("failed to get codewars user: %w", err)
		}
		return &user, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*User), nil
}

type challengePage struct {
	TotalPages int         `json:"totalPages"`
	TotalItems int         `json:"totalItems"`
	Data       []Challenge `json:"data"`
}

// GetCompletedChallenges pages through the user's completed katas, newest
// first.
func (c *Client) GetCompletedChallenges(username string) ([]Challenge, error) {
	v, err := c.cache.Fetch("codewars:challenges:"+username, 0, func() (interface{}, error) {
		var all []Challenge

		for page := 0; page < maxChallengePages; page++ {
			url := fmt.Sprintf("%s/users/%s/code-challenges/completed?page=%d", c.baseURL, username, page)

			var result challengePage
			if err := c.getJSON(url, &result); err != nil {
				return nil, fmt.Errorf("failed to get completed challenges: %w", err)
			}

			all = append(all, result.Data...)
			if len(result.Data) < challengePageSize {
				break
			}
		}

		return all, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Challenge), nil
}

func (c *Client) getJSON(url string, out interface{}) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
