package types

import "time"

// UnixTime is a Steam timestamp (seconds since epoch). Steam sends
// these as plain JSON numbers.
type UnixTime int64

func (u UnixTime) Time() time.Time {
	return time.Unix(int64(u), 0)
}

func (u UnixTime) IsZero() bool {
	return u == 0
}
