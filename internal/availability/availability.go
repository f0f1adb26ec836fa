// Package availability turns a provider's recurring time labels into the
// options that can still be booked on a given day.
package availability

import (
	"strconv"
	"strings"
	"time"

	"carelink-api/internal/model"
)

// Option is a selectable time. Value and Label are both the original label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Resolve returns the labels bookable on date as seen from now, in their
// original order. Future dates pass every label through untouched; today
// keeps labels strictly later than now; past dates keep nothing.
func Resolve(labels []string, date model.Date, now time.Time) []Option {
	if len(labels) == 0 || date.IsZero() {
		return []Option{}
	}

	today := model.DateOf(now)
	switch c := date.Compare(today); {
	case c < 0:
		return []Option{}
	case c > 0:
		out := make([]Option, len(labels))
		for i, l := range labels {
			out[i] = Option{Value: l, Label: l}
		}
		return out
	}

	cutoff := now.Hour()*60 + now.Minute()
	out := make([]Option, 0, len(labels))
	for _, l := range labels {
		m, ok := ParseLabel(l)
		if !ok || m <= cutoff {
			continue
		}
		out = append(out, Option{Value: l, Label: l})
	}
	return out
}

// ParseLabel converts "H:MM AM/PM" or 24-hour "HH:MM" into minutes since
// midnight. ok is false for anything it cannot read.
func ParseLabel(label string) (minutes int, ok bool) {
	s := strings.ToUpper(strings.TrimSpace(label))
	meridiem := ""
	if strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM") {
		meridiem = s[len(s)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	hs, ms, found := strings.Cut(s, ":")
	if !found || !digits(hs) || !digits(ms) || len(ms) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m > 59 {
		return 0, false
	}

	switch meridiem {
	case "":
		if h > 23 {
			return 0, false
		}
	case "AM":
		if h < 1 || h > 12 {
			return 0, false
		}
		if h == 12 {
			h = 0
		}
	case "PM":
		if h < 1 || h > 12 {
			return 0, false
		}
		if h != 12 {
			h += 12
		}
	}
	return h*60 + m, true
}

func digits(s string) bool {
	if s == "" || len(s) > 2 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Resolver binds Resolve to a clock.
type Resolver struct {
	now func() time.Time
}

// NewResolver uses clock for "now"; nil means time.Now.
func NewResolver(clock func() time.Time) *Resolver {
	if clock == nil {
		clock = time.Now
	}
	return &Resolver{now: clock}
}

func (r *Resolver) Resolve(labels []string, date model.Date) []Option {
	return Resolve(labels, date, r.now())
}

// Now exposes the resolver's clock so callers agree on "today".
func (r *Resolver) Now() time.Time { return r.now() }

// Contains reports whether label is among opts.
func Contains(opts []Option, label string) bool {
	for _, o := range opts {
		if o.Value == label {
			return true
		}
	}
	return false
}
