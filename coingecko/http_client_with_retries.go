package coingecko

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// StatusHandler is an interface for handling HTTP request statuses
type StatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
	// OnRetry handles retry events
	OnRetry()
}

// RetryOptions configures retry behavior for upstream requests
type RetryOptions struct {
	// MaxAttempts total attempts per request, including the first one
	MaxAttempts int
	// RetryDelay base wait after a 429; the wait grows linearly with the
	// attempt number (attempt 1 waits 1x, attempt 2 waits 2x)
	RetryDelay time.Duration
	// NetworkRetryDelay fixed wait after a network-level failure
	NetworkRetryDelay time.Duration
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultRetryOptions returns default retry options
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxAttempts:       3,
		RetryDelay:        15 * time.Second,
		NetworkRetryDelay: 5 * time.Second,
		LogPrefix:         "HTTP",
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

// attemptOutcome classifies the result of a single request attempt
type attemptOutcome int

const (
	outcomeSuccess attemptOutcome = iota
	outcomeRetryRateLimited
	outcomeRetryNetwork
	outcomeTerminal
)

// classifyAttempt maps one attempt's result onto the retry state machine.
// Only rate-limited and network-level failures are retryable.
func classifyAttempt(resp *http.Response, err error) attemptOutcome {
	if err != nil {
		return outcomeRetryNetwork
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return outcomeSuccess
	case http.StatusTooManyRequests:
		return outcomeRetryRateLimited
	default:
		return outcomeTerminal
	}
}

// HTTPClientWithRetries wraps an HTTP Client with retry capabilities
type HTTPClientWithRetries struct {
	Client        *http.Client
	Opts          RetryOptions
	StatusHandler StatusHandler
	Limiter       *rate.Limiter

	// sleep is replaceable so tests run without real waits
	sleep func(time.Duration)
}

// NewHTTPClientWithRetries creates a new HTTP Client with retry capabilities
func NewHTTPClientWithRetries(opts RetryOptions, handler StatusHandler, limiter *rate.Limiter) *HTTPClientWithRetries {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &HTTPClientWithRetries{
		Client:        client,
		Opts:          opts,
		StatusHandler: handler,
		Limiter:       limiter,
		sleep:         time.Sleep,
	}
}

// SetSleep replaces the delay function used between attempts
func (c *HTTPClientWithRetries) SetSleep(sleep func(time.Duration)) {
	c.sleep = sleep
}

// ExecuteRequest executes an HTTP request with retry logic and returns the
// response body. Failures come back classified: ErrRateLimitExceeded after
// exhausted 429 retries, ErrUpstreamUnavailable after exhausted network
// retries, *HTTPError for any other upstream status (never retried).
func (c *HTTPClientWithRetries) ExecuteRequest(req *http.Request) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.Opts.MaxAttempts; attempt++ {
		// Client-side pacing before each attempt
		if c.Limiter != nil {
			if err := c.Limiter.Wait(req.Context()); err != nil {
				return nil, fmt.Errorf("rate limiter wait failed: %w", err)
			}
		}

		requestStart := time.Now()
		resp, err := c.Client.Do(req)
		requestDuration := time.Since(requestStart)

		switch classifyAttempt(resp, err) {
		case outcomeSuccess:
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr != nil {
				return nil, fmt.Errorf("error reading response: %w", readErr)
			}
			if c.StatusHandler != nil {
				c.StatusHandler.OnRequest("success")
			}
			return body, nil

		case outcomeRetryRateLimited:
			resp.Body.Close()
			if c.StatusHandler != nil {
				c.StatusHandler.OnRequest("rate_limited")
			}

			waitTime := time.Duration(attempt) * c.Opts.RetryDelay
			log.Printf("%s: Rate limit hit (attempt %d/%d), waiting %.0fs",
				c.Opts.LogPrefix, attempt, c.Opts.MaxAttempts, waitTime.Seconds())
			c.sleep(waitTime)

			if attempt == c.Opts.MaxAttempts {
				return nil, ErrRateLimitExceeded
			}
			lastErr = ErrRateLimitExceeded

		case outcomeRetryNetwork:
			if c.StatusHandler != nil {
				c.StatusHandler.OnRequest("error")
			}

			log.Printf("%s: Request failed after %.2fs: %v",
				c.Opts.LogPrefix, requestDuration.Seconds(), err)

			if attempt == c.Opts.MaxAttempts {
				return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
			}
			lastErr = err
			c.sleep(c.Opts.NetworkRetryDelay)

		case outcomeTerminal:
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			if c.StatusHandler != nil {
				c.StatusHandler.OnRequest("error")
			}

			log.Printf("%s: Request failed with status %d after %.2fs",
				c.Opts.LogPrefix, resp.StatusCode, requestDuration.Seconds())
			return nil, &HTTPError{Status: resp.StatusCode, Message: string(body)}
		}

		if c.StatusHandler != nil {
			c.StatusHandler.OnRetry()
		}
		log.Printf("%s: Retry %d/%d after error: %v",
			c.Opts.LogPrefix, attempt, c.Opts.MaxAttempts-1, lastErr)
	}

	// Loop always returns from its final attempt
	return nil, fmt.Errorf("%w: all %d attempts failed", ErrUpstreamUnavailable, c.Opts.MaxAttempts)
}
