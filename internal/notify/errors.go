package notify

// User-visible outcome messages.
const (
	MsgNoEndpoint       = "no notification endpoint configured"
	MsgTransportFailure = "notification request failed"
)
