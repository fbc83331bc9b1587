package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDriveIsPast(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	drive := Drive{Deadline: now.Add(time.Hour)}

	assert.False(t, drive.IsPast(now))
	assert.True(t, drive.IsPast(now.Add(2*time.Hour)))

	// A deadline equal to now is not yet past; writes are gated separately.
	drive.Deadline = now
	assert.False(t, drive.IsPast(now))
}
