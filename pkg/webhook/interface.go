package webhook

import "context"

// Poster is the outbound webhook interface, extracted for mocking.
type Poster interface {
	Post(ctx context.Context, url string, payload any) (*Response, error)
}

var _ Poster = (*Client)(nil)
