package catalog

// timeframes is the fixed duration cycle tasks draw from.
var timeframes = [...]string{
	"15 minutes",
	"30 minutes",
	"1 hour",
	"2 hours",
	"Half day",
	"1 day",
	"2-3 days",
}

// TimeframeAt returns the duration label at index i, wrapping cyclically.
// Defined for all non-negative i.
func TimeframeAt(i int) string {
	return timeframes[i%len(timeframes)]
}
