package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualFiresAtDeadline(t *testing.T) {
	m := NewManual(epoch)
	fired := false
	m.AfterFunc(100*time.Millisecond, func() { fired = true })

	m.Advance(99 * time.Millisecond)
	assert.False(t, fired)

	m.Advance(time.Millisecond)
	assert.True(t, fired)
	assert.Equal(t, 0, m.Pending())
}

func TestManualOrderAndNow(t *testing.T) {
	m := NewManual(epoch)
	var order []string
	var seenAt []time.Duration
	record := func(name string) func() {
		return func() {
			order = append(order, name)
			seenAt = append(seenAt, m.Now().Sub(epoch))
		}
	}
	m.AfterFunc(30*time.Millisecond, record("c"))
	m.AfterFunc(10*time.Millisecond, record("a"))
	m.AfterFunc(10*time.Millisecond, record("b"))

	m.Advance(time.Second)

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 10 * time.Millisecond, 30 * time.Millisecond}, seenAt)
	assert.Equal(t, time.Second, m.Now().Sub(epoch))
}

func TestManualStop(t *testing.T) {
	m := NewManual(epoch)
	fired := false
	tm := m.AfterFunc(time.Millisecond, func() { fired = true })

	require.True(t, tm.Stop())
	assert.False(t, tm.Stop())

	m.Advance(time.Second)
	assert.False(t, fired)
}

func TestManualNestedSchedule(t *testing.T) {
	m := NewManual(epoch)
	var at time.Duration
	m.AfterFunc(10*time.Millisecond, func() {
		m.AfterFunc(5*time.Millisecond, func() { at = m.Now().Sub(epoch) })
	})

	m.Advance(20 * time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, at)
}

func TestManualAdvanceTo(t *testing.T) {
	m := NewManual(epoch)
	m.AdvanceTo(epoch.Add(time.Minute))
	assert.Equal(t, epoch.Add(time.Minute), m.Now())

	m.AdvanceTo(epoch)
	assert.Equal(t, epoch.Add(time.Minute), m.Now())
}
