package rate

import (
	"net/http"

	xrate "golang.org/x/time/rate"
)

type tokenBucket struct {
	limiter *xrate.Limiter
}

var _ Limiter = &tokenBucket{}

// NewTokenBucket returns a Limiter backed by golang.org/x/time/rate,
// allowing up to rps requests per second with the given burst size.
// Limit blocks until a token is available; if the request carries a
// context that expires while waiting, the request is let through and
// the transport reports the context error instead.
func NewTokenBucket(rps float64, burst int) Limiter {
	return &tokenBucket{
		limiter: xrate.NewLimiter(xrate.Limit(rps), burst),
	}
}

func (t *tokenBucket) Limit(req *http.Request) {
	_ = t.limiter.Wait(req.Context())
}
