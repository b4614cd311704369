package usecase

import (
	"testing"
	"time"

	"PolyXBets/internal/domain/models"
	"PolyXBets/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestIntroCombinesOnce(t *testing.T) {
	c := clock.NewManual(epoch)
	changes := 0
	s := NewIntroSequencer(c, 1200*time.Millisecond, func() { changes++ })

	s.Activate()
	s.Activate()
	assert.Equal(t, 1, c.Pending())

	at(c, 1199)
	assert.Equal(t, models.IntroPhaseSeparate, s.Phase())

	at(c, 1200)
	assert.Equal(t, models.IntroPhaseCombined, s.Phase())

	at(c, 10_000)
	assert.Equal(t, models.IntroPhaseCombined, s.Phase())
	assert.Equal(t, 1, changes)
}

func TestIntroDeactivateCancelsTimer(t *testing.T) {
	c := clock.NewManual(epoch)
	changes := 0
	s := NewIntroSequencer(c, 1200*time.Millisecond, func() { changes++ })

	s.Activate()
	at(c, 500)
	s.Deactivate()
	s.Deactivate()
	assert.Equal(t, 0, c.Pending())

	at(c, 5000)
	assert.Equal(t, models.IntroPhaseSeparate, s.Phase())
	assert.Zero(t, changes)
	assert.False(t, s.Active())

	// not re-entrant
	s.Activate()
	assert.Equal(t, 0, c.Pending())
}
