package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestRelativeTimeWith(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clk := fixedClock{now: now}

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "just now", t: now.Add(-30 * time.Second), want: "just now"},
		{name: "one minute", t: now.Add(-1 * time.Minute), want: "1 minute ago"},
		{name: "minutes", t: now.Add(-45 * time.Minute), want: "45 minutes ago"},
		{name: "one hour", t: now.Add(-1 * time.Hour), want: "1 hour ago"},
		{name: "hours", t: now.Add(-5 * time.Hour), want: "5 hours ago"},
		{name: "one day", t: now.Add(-25 * time.Hour), want: "1 day ago"},
		{name: "days", t: now.Add(-3 * 24 * time.Hour), want: "3 days ago"},
		{name: "one week", t: now.Add(-8 * 24 * time.Hour), want: "1 week ago"},
		{name: "weeks", t: now.Add(-21 * 24 * time.Hour), want: "3 weeks ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, RelativeTimeWith(tt.t, clk))
		})
	}
}
