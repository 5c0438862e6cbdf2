package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	in := time.Date(2024, 6, 1, 23, 45, 10, 99, loc)

	got := StartOfDay(in)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, loc), got)
}

func TestLocationClock_TodayUsesConfiguredZone(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	c := New(loc)

	today := c.Today()

	assert.Equal(t, loc, today.Location())
	assert.Equal(t, 0, today.Hour())
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	c := Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), c.Today())
}
