package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	utc := time.Date(2026, 3, 5, 17, 30, 42, 0, time.UTC)
	got := StartOfDay(utc)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestStartOfDayKeepsLocation(t *testing.T) {
	cst := time.FixedZone("UTC+8", 8*3600)

	// 本地 3 月 5 日凌晨，UTC 还是 3 月 4 日；必须按本地自然日对齐
	local := time.Date(2026, 3, 5, 1, 30, 0, 0, cst)
	got := StartOfDay(local)

	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, cst), got)
	assert.NotEqual(t, got, local.Truncate(24*time.Hour))
}
