package rate

import "net/http"

// Limiter controls request rates to the Steam Web API and Steam community.
//
// The Limiter interface provides rate limiting functionality to prevent
// tripping Steam's per-IP request throttling (which answers with 429s and
// temporary bans). Implementations can use different strategies such as:
//   - Token bucket algorithm
//   - Fixed window counting
//   - Sliding window counting
//   - Leaky bucket algorithm
//
// The Limit method is called before each request to potentially delay
// or throttle the request based on the current rate limiting state.
// The implementation can use the request information (method, path, etc.)
// to apply different rate limits for different endpoints.
type Limiter interface {
	// Limit applies rate limiting to the given request. This method
	// should block if necessary to maintain the desired request rate.
	Limit(req *http.Request)
}
