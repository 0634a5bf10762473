package themes

import "time"

// Countdown is the time left until the wedding.
type Countdown struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// ComputeCountdown splits wedding-now into days/hours/minutes/seconds.
// Once the wedding has started every field is zero.
func ComputeCountdown(now, wedding time.Time) Countdown {
	if !wedding.After(now) {
		return Countdown{}
	}
	total := int64(wedding.Sub(now) / time.Second)
	return Countdown{
		Days:    total / 86400,
		Hours:   (total / 3600) % 24,
		Minutes: (total / 60) % 60,
		Seconds: total % 60,
	}
}

// Done reports whether the countdown has reached zero.
func (c Countdown) Done() bool {
	return c == Countdown{}
}
