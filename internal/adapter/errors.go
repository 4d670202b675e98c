package adapter

import "errors"

var (
	ErrUpstreamUnavailable     = errors.New("upstream unavailable")
	ErrUpstreamInvalidResponse = errors.New("upstream returned invalid response")
	ErrInvalidBaseURL          = errors.New("invalid upstream base url")
)
