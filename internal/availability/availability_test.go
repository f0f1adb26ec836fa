package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carelink-api/internal/model"
)

var labels = []string{"09:00 AM", "10:00 AM", "10:30 AM", "11:00 AM", "12:00 PM", "02:30 PM", "16:45"}

func at(h, m int) time.Time {
	return time.Date(2024, time.June, 10, h, m, 0, 0, time.UTC)
}

func values(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}

func TestResolveFutureDatePassesEverything(t *testing.T) {
	now := at(23, 59)
	tomorrow := model.Date{Year: 2024, Month: time.June, Day: 11}

	withJunk := append([]string{"not a time"}, labels...)
	got := Resolve(withJunk, tomorrow, now)
	assert.Equal(t, withJunk, values(got))
	for _, o := range got {
		assert.Equal(t, o.Value, o.Label)
	}
}

func TestResolveTodayStrictlyAfterNow(t *testing.T) {
	today := model.Date{Year: 2024, Month: time.June, Day: 10}
	got := values(Resolve(labels, today, at(10, 30)))

	assert.NotContains(t, got, "10:00 AM")
	assert.NotContains(t, got, "10:30 AM")
	assert.Contains(t, got, "11:00 AM")
	assert.Equal(t, []string{"11:00 AM", "12:00 PM", "02:30 PM", "16:45"}, got)
}

func TestResolveTodayDropsMalformed(t *testing.T) {
	today := model.Date{Year: 2024, Month: time.June, Day: 10}
	got := values(Resolve([]string{"ab:cd PM", "11:00 AM", "25:00", "3 PM", "13:00 PM"}, today, at(8, 0)))
	assert.Equal(t, []string{"11:00 AM"}, got)
}

func TestResolvePastDate(t *testing.T) {
	yesterday := model.Date{Year: 2024, Month: time.June, Day: 9}
	assert.Empty(t, Resolve(labels, yesterday, at(0, 0)))
}

func TestResolveDegenerate(t *testing.T) {
	assert.Empty(t, Resolve(nil, model.Date{Year: 2030, Month: 1, Day: 1}, at(9, 0)))
	assert.Empty(t, Resolve(labels, model.Date{}, at(9, 0)))
	assert.NotNil(t, Resolve(nil, model.Date{}, at(9, 0)))
}

func TestResolveIdempotent(t *testing.T) {
	today := model.Date{Year: 2024, Month: time.June, Day: 10}
	now := at(10, 15)
	first := Resolve(labels, today, now)
	second := Resolve(labels, today, now)
	assert.Equal(t, first, second)
}

func TestResolveUsesNowLocation(t *testing.T) {
	// 23:30 UTC on the 10th is 01:30 on the 11th in UTC+2
	now := time.Date(2024, time.June, 10, 23, 30, 0, 0, time.UTC).In(time.FixedZone("plus2", 2*3600))
	the11th := model.Date{Year: 2024, Month: time.June, Day: 11}
	got := values(Resolve([]string{"01:00 AM", "02:00 AM"}, the11th, now))
	assert.Equal(t, []string{"02:00 AM"}, got)
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12:00 AM", 0, true},
		{"12:15 am", 15, true},
		{"12:00 PM", 720, true},
		{"1:05 PM", 785, true},
		{"09:30 AM", 570, true},
		{"9:30AM", 570, true},
		{"11:59 pm", 1439, true},
		{"00:00", 0, true},
		{"14:30", 870, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"0:30 AM", 0, false},
		{"13:00 PM", 0, false},
		{"10:60", 0, false},
		{"10:5", 0, false},
		{"ten:00", 0, false},
		{"10", 0, false},
		{"", 0, false},
		{"-1:00", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLabel(tt.in)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolverClock(t *testing.T) {
	now := at(12, 0)
	r := NewResolver(func() time.Time { return now })
	today := model.DateOf(now)
	assert.Equal(t, []string{"02:30 PM", "16:45"}, values(r.Resolve(labels, today)))
	assert.Equal(t, now, r.Now())
	assert.True(t, Contains(r.Resolve(labels, today), "16:45"))
	assert.False(t, Contains(r.Resolve(labels, today), "09:00 AM"))
}
