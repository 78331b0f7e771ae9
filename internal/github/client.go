package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"portfolio-stats/internal/activity"
	"portfolio-stats/internal/cache"

	"github.com/google/go-github/v81/github"
	"golang.org/x/oauth2"
)

// ErrNoToken is returned by the GraphQL-backed calls when no API token is
// configured. The widget then falls back to the public event feed.
var ErrNoToken = errors.New("github token required for contribution calendar")

type Client struct {
	client     *github.Client
	httpClient *http.Client
	cache      *cache.Cache
	token      string
	maxWorkers int
	ctx        context.Context
}

const graphQLEndpoint = "https://api.github.com/graphql"

// Freshness tiers per endpoint. Profile and repository data changes slowly,
// the event feed is the most volatile, contribution calendars only gain a new
// bucket once a day.
const (
	userTTL          = 5 * time.Minute
	reposTTL         = 5 * time.Minute
	eventsTTL        = 2 * time.Minute
	contributionsTTL = 15 * time.Minute
	multiYearTTL     = 30 * time.Minute
)

const multiYearSpan = 5

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type contributionCalendarResponse struct {
	Data struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
					Weeks              []struct {
						ContributionDays []struct {
							Date              string `json:"date"`
							ContributionCount int    `json:"contributionCount"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// NewClient builds a GitHub client. An empty token means unauthenticated
// REST access only; the contribution calendar needs a token.
func NewClient(ctx context.Context, token string, c *cache.Cache, maxWorkers int) *Client {
	httpClient := http.DefaultClient
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	if maxWorkers < 1 {
		maxWorkers = 1
	}

	return &Client{
		client:     github.NewClient(httpClient),
		httpClient: httpClient,
		cache:      c,
		token:      token,
		maxWorkers: maxWorkers,
		ctx:        ctx,
	}
}

func (c *Client) GetUser(username string) (*Profile, error) {
	v, err := c.cache.Fetch("github:user:"+username, userTTL, func() (interface{}, error) {
		user, resp, err := c.client.Users.Get(c.ctx, username)
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("user '%s' not found", username)
			}
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		return toProfile(user), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Profile), nil
}

func (c *Client) GetRepositories(username string) ([]Repository, error) {
	v, err := c.cache.Fetch("github:repos:"+username, reposTTL, func() (interface{}, error) {
		var all []Repository
		opts := &github.RepositoryListByUserOptions{
			Type:        "owner",
			Sort:        "updated",
			ListOptions: github.ListOptions{PerPage: 100},
		}

		for {
			repos, resp, err := c.client.Repositories.ListByUser(c.ctx, username, opts)
			if err != nil {
				return nil, fmt.Errorf("failed to list repositories: %w", err)
			}

			for _, r := range repos {
				all = append(all, toRepository(r))
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}

		return all, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Repository), nil
}

// GetEvents returns the user's recent public events, newest first. The feed
// only covers roughly the last 90 days, which is why the contribution
// calendar is preferred when a token is available.
func (c *Client) GetEvents(username string) ([]Event, error) {
	v, err := c.cache.Fetch("github:events:"+username, eventsTTL, func() (interface{}, error) {
		var all []Event
		opts := &github.ListOptions{PerPage: 100}

		for page := 1; page <= 10; page++ {
			opts.Page = page
			events, resp, err := c.client.Activity.ListEventsPerformedByUser(c.ctx, username, false, opts)
			if err != nil {
				return nil, fmt.Errorf("failed to list events: %w", err)
			}

			for _, ev := range events {
				e := Event{}
				if ev.Type != nil {
					e.Type = *ev.Type
				}
				if ev.Repo != nil && ev.Repo.Name != nil {
					e.Repo = *ev.Repo.Name
				}
				if ev.CreatedAt != nil {
					e.CreatedAt = ev.CreatedAt.Time.UTC()
				}
				all = append(all, e)
			}

			if resp.NextPage == 0 {
				break
			}
		}

		return all, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Event), nil
}

// GetContributions fetches the contribution calendar for one calendar year.
// Dates come back verbatim from the API; parsing belongs to the normalizer.
func (c *Client) GetContributions(username string, year int) ([]activity.RawContribution, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	key := fmt.Sprintf("github:contributions:%s:%d", username, year)
	v, err := c.cache.Fetch(key, contributionsTTL, func() (interface{}, error) {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
		return c.getContributionsForPeriod(username, from, to)
	})
	if err != nil {
		return nil, err
	}
	return v.([]activity.RawContribution), nil
}

// GetMultiYearContributions fetches the last few rolling years of calendars
// and concatenates them, for streaks that span year boundaries. Periods load
// concurrently; once the most recent period has loaded, failures on older
// periods just shorten the history instead of failing the whole call.
func (c *Client) GetMultiYearContributions(username string) ([]activity.RawContribution, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	v, err := c.cache.Fetch("github:contributions:multi:"+username, multiYearTTL, func() (interface{}, error) {
		now := time.Now().UTC()

		results := make([][]activity.RawContribution, multiYearSpan)
		errs := make([]error, multiYearSpan)

		var wg sync.WaitGroup
		sem := make(chan struct{}, c.maxWorkers)

		for yearsBack := 0; yearsBack < multiYearSpan; yearsBack++ {
			wg.Add(1)
			sem <- struct{}{}

			go func(yearsBack int) {
				defer wg.Done()
				defer func() { <-sem }()

				to := now.AddDate(-yearsBack, 0, 0)
				from := to.AddDate(-1, 0, 0)
				results[yearsBack], errs[yearsBack] = c.getContributionsForPeriod(username, from, to)
			}(yearsBack)
		}

		wg.Wait()

		if errs[0] != nil {
			return nil, errs[0]
		}

		var all []activity.RawContribution
		for yearsBack := 0; yearsBack < multiYearSpan; yearsBack++ {
			if errs[yearsBack] != nil {
				break
			}
			all = append(all, results[yearsBack]...)
		}

		return all, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]activity.RawContribution), nil
}

func (c *Client) getContributionsForPeriod(username string, from, to time.Time) ([]activity.RawContribution, error) {
	query := `
		query($username: String!, $from: DateTime!, $to: DateTime!) {
			user(login: $username) {
				contributionsCollection(from: $from, to: $to) {
					contributionCalendar {
						totalContributions
						weeks {
							contributionDays {
								date
								contributionCount
							}
						}
					}
				}
			}
		}
	`

	reqBody := graphQLRequest{
		Query: query,
		Variables: map[string]interface{}{
			"username": username,
			"from":     from.Format(time.RFC3339),
			"to":       to.Format(time.RFC3339),
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, graphQLEndpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result contributionCalendarResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("GraphQL error: %s", result.Errors[0].Message)
	}

	var contribs []activity.RawContribution
	for _, week := range result.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			contribs = append(contribs, activity.RawContribution{
				Date:  day.Date,
				Count: day.ContributionCount,
			})
		}
	}

	return contribs, nil
}

func (c *Client) CheckRateLimit() (*github.RateLimits, error) {
	limits, _, err := c.client.RateLimit.Get(c.ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check rate limit: %w", err)
	}
	return limits, nil
}

func toProfile(user *github.User) *Profile {
	p := &Profile{}
	if user.Login != nil {
		p.Login = *user.Login
	}
	if user.Name != nil {
		p.Name = *user.Name
	}
	if user.Bio != nil {
		p.Bio = *user.Bio
	}
	if user.Company != nil {
		p.Company = *user.Company
	}
	if user.Location != nil {
		p.Location = *user.Location
	}
	if user.Blog != nil {
		p.Blog = *user.Blog
	}
	if user.AvatarURL != nil {
		p.AvatarURL = *user.AvatarURL
	}
	if user.PublicRepos != nil {
		p.PublicRepos = *user.PublicRepos
	}
	if user.PublicGists != nil {
		p.PublicGists = *user.PublicGists
	}
	if user.Followers != nil {
		p.Followers = *user.Followers
	}
	if user.Following != nil {
		p.Following = *user.Following
	}
	if user.CreatedAt != nil {
		p.CreatedAt = user.CreatedAt.Time
	}
	return p
}

func toRepository(r *github.Repository) Repository {
	repo := Repository{}
	if r.Name != nil {
		repo.Name = *r.Name
	}
	if r.FullName != nil {
		repo.FullName = *r.FullName
	}
	if r.Description != nil {
		repo.Description = *r.Description
	}
	if r.HTMLURL != nil {
		repo.HTMLURL = *r.HTMLURL
	}
	if r.Language != nil {
		repo.Language = *r.Language
	}
	if r.StargazersCount != nil {
		repo.Stars = *r.StargazersCount
	}
	if r.ForksCount != nil {
		repo.Forks = *r.ForksCount
	}
	if r.Fork != nil {
		repo.Fork = *r.Fork
	}
	if r.CreatedAt != nil {
		repo.CreatedAt = r.CreatedAt.Time
	}
	if r.UpdatedAt != nil {
		repo.UpdatedAt = r.UpdatedAt.Time
	}
	return repo
}
