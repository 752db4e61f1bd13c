package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayString(t *testing.T) {
	d := NewDay(2025, time.January, 1)
	assert.Equal(t, "2025-01-01", d.String())
}

func TestDayNormalizes(t *testing.T) {
	// Day 32 of January rolls into February
	d := NewDay(2025, time.January, 32)
	assert.Equal(t, "2025-02-01", d.String())
}

func TestDayAddRollsOver(t *testing.T) {
	d := NewDay(2025, time.December, 31)
	assert.Equal(t, "2026-01-01", d.Add(1).String())
}

func TestDayOfUsesUTCCalendar(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC
	loc := time.FixedZone("UTC-5", -5*3600)
	instant := time.Date(2025, time.March, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, "2025-03-02", DayOf(instant).String())
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-07-09")
	require.NoError(t, err)
	assert.Equal(t, NewDay(2025, time.July, 9), d)

	_, err = ParseDay("Mon Jan 01 2025")
	assert.Error(t, err)
}

func TestDayJSONRoundTrip(t *testing.T) {
	d := NewDay(2025, time.June, 15)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-15"`, string(raw))

	var back Day
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func TestDayBefore(t *testing.T) {
	mon := NewDay(2025, time.January, 1)
	tue := mon.Add(1)
	assert.True(t, mon.Before(tue))
	assert.False(t, tue.Before(mon))
	assert.False(t, mon.Before(mon))
}
