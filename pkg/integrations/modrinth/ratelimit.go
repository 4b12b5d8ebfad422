package modrinth

import (
	"net/http"
	"strconv"
	"strings"
)

// Rate-limit response headers.
const (
	HeaderRateLimit     = "X-Ratelimit-Limit"
	HeaderRateRemaining = "X-Ratelimit-Remaining"
	HeaderRateReset     = "X-Ratelimit-Reset"
)

// Unknown marks a rate-limit field the server has not reported yet.
const Unknown = -1

// RateLimit is the rate-limit snapshot reported by the most recent response.
//
// Reset is the number of seconds until the window resets. Fields hold
// [Unknown] until a response carries the corresponding header.
type RateLimit struct {
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
	Reset     int `json:"reset"`
}

func unknownRateLimit() RateLimit {
	return RateLimit{Limit: Unknown, Remaining: Unknown, Reset: Unknown}
}

// Known reports whether every field has been reported by the server.
func (r RateLimit) Known() bool {
	return r.Limit != Unknown && r.Remaining != Unknown && r.Reset != Unknown
}

// merge returns r updated with whichever headers are present and numeric.
func (r RateLimit) merge(h http.Header) RateLimit {
	set := func(dst *int, name string) {
		v := strings.TrimSpace(h.Get(name))
		if v == "" {
			return
		}
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
	set(&r.Limit, HeaderRateLimit)
	set(&r.Remaining, HeaderRateRemaining)
	set(&r.Reset, HeaderRateReset)
	return r
}
