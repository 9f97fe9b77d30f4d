package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func TestFake_NowStandsStill(t *testing.T) {
	c := Fake(epoch)
	assert.Equal(t, epoch, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, epoch.Add(90*time.Second), c.Now())
}

func TestFake_TickerFiresOnAdvance(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Minute)
	defer ticker.Stop()

	c.Advance(30 * time.Second)
	select {
	case <-ticker.C:
		t.Fatal("ticker fired before its interval")
	default:
	}

	c.Advance(30 * time.Second)
	select {
	case tick := <-ticker.C:
		assert.Equal(t, epoch.Add(time.Minute), tick)
	default:
		t.Fatal("ticker did not fire")
	}
}

func TestFake_StoppedTickerIsSilent(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Minute)
	ticker.Stop()

	c.Advance(5 * time.Minute)
	select {
	case <-ticker.C:
		t.Fatal("stopped ticker fired")
	default:
	}
}

func TestFake_NonPositiveIntervalPanics(t *testing.T) {
	assert.Panics(t, func() { Fake(epoch).NewTicker(0) })
}
