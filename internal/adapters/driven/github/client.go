package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client wraps the go-github client with gist helpers and rate limiting.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewClient creates a GitHub API client authenticated with a personal
// access token. Works for both classic and fine-grained tokens.
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	return &Client{
		gh:          gh.NewClient(tc),
		rateLimiter: NewRateLimiter(),
	}
}

// NewClientWithHTTPClient creates a client over a custom http.Client.
// Useful for tests pointing at a stub server.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		gh:          gh.NewClient(httpClient),
		rateLimiter: NewRateLimiter(),
	}
}

// WithBaseURL redirects API calls to the given base URL. Test helper.
func (c *Client) WithBaseURL(baseURL string) *Client {
	client, err := c.gh.WithEnterpriseURLs(baseURL, baseURL)
	if err == nil {
		c.gh = client
	}
	return c
}

// ListOwnedGists returns every gist owned by the authenticated user.
func (c *Client) ListOwnedGists(ctx context.Context) ([]*gh.Gist, error) {
	return c.listGists(ctx, "list gists", func(opts *gh.GistListOptions) ([]*gh.Gist, *gh.Response, error) {
		return c.gh.Gists.List(ctx, "", opts)
	})
}

// ListStarredGists returns every gist the user has starred.
func (c *Client) ListStarredGists(ctx context.Context) ([]*gh.Gist, error) {
	return c.listGists(ctx, "list starred gists", func(opts *gh.GistListOptions) ([]*gh.Gist, *gh.Response, error) {
		return c.gh.Gists.ListStarred(ctx, opts)
	})
}

// listGists drains one paginated gist listing endpoint.
func (c *Client) listGists(
	ctx context.Context, operation string,
	page func(*gh.GistListOptions) ([]*gh.Gist, *gh.Response, error),
) ([]*gh.Gist, error) {
	var all []*gh.Gist

	opts := &gh.GistListOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	for {
		select {
		case <-ctx.Done():
			return all, ctx.Err()
		default:
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		gists, resp, err := page(opts)
		if err != nil {
			return nil, c.wrapError(err, operation)
		}

		c.updateRateLimitFromResponse(resp)
		all = append(all, gists...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// GetGist fetches one gist with full file contents. The list endpoints
// omit content, so indexing fetches each gist individually.
func (c *Client) GetGist(ctx context.Context, id string) (*gh.Gist, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	gist, resp, err := c.gh.Gists.Get(ctx, id)
	if err != nil {
		return nil, c.wrapError(err, "get gist")
	}

	c.updateRateLimitFromResponse(resp)
	return gist, nil
}

// ValidateCredentials checks the token by fetching the current user.
func (c *Client) ValidateCredentials(ctx context.Context) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	_, resp, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return c.wrapError(err, "validate credentials")
	}

	c.updateRateLimitFromResponse(resp)
	return nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// updateRateLimitFromResponse updates the rate limiter from GitHub
// response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
			URL:        ghErr.Response.Request.URL.String(),
		}
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   c.rateLimiter.ResetTime(),
			Remaining: c.rateLimiter.Remaining(),
			Limit:     c.rateLimiter.Limit(),
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}
