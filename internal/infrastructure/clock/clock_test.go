package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock_Now_IsCurrent(t *testing.T) {
	before := time.Now()
	got := NewSystemClock().Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
