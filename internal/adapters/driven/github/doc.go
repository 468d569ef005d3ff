// Package github implements the GistSource driven port against the
// GitHub Gists API. It fetches the authenticated user's owned and
// starred gists with pagination and proactive rate limiting, and
// normalizes gist descriptions into folder labels and tags.
package github
