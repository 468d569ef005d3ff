package github

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestRateLimiter_UpdateFromResponse verifies header parsing.
func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	r := NewRateLimiter()

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set(HeaderRateRemaining, "42")
	resp.Header.Set(HeaderRateLimit, "5000")
	resp.Header.Set(HeaderRateReset, "1700000000")

	r.UpdateFromResponse(resp)

	assert.Equal(t, 42, r.Remaining())
	assert.Equal(t, 5000, r.Limit())
	assert.Equal(t, time.Unix(1700000000, 0), r.ResetTime())
}

// TestRateLimiter_IgnoresGarbageHeaders verifies unparseable values
// leave prior state intact.
func TestRateLimiter_IgnoresGarbageHeaders(t *testing.T) {
	r := NewRateLimiter()

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set(HeaderRateRemaining, "not-a-number")
	r.UpdateFromResponse(resp)

	assert.Equal(t, AuthenticatedQuota, r.Remaining())
}

// TestRateLimiter_NilResponse verifies a nil response is a no-op.
func TestRateLimiter_NilResponse(t *testing.T) {
	r := NewRateLimiter()
	r.UpdateFromResponse(nil)
	assert.Equal(t, AuthenticatedQuota, r.Remaining())
}
