package webhook

import "net/http"

// Response is the answer received from a webhook endpoint.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports whether the response carries a success status.
func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}
