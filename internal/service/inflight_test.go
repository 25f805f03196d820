package service

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInFlight_RejectsDuplicate(t *testing.T) {
	g := NewInFlight()

	release, err := g.Acquire("s1:generate:p1")
	require.NoError(t, err)
	assert.True(t, g.Busy("s1:generate:p1"))

	_, err = g.Acquire("s1:generate:p1")
	assert.ErrorIs(t, err, ErrInFlight)

	other, err := g.Acquire("s1:generate:p2")
	require.NoError(t, err)
	other()

	release()
	release()
	assert.False(t, g.Busy("s1:generate:p1"))

	again, err := g.Acquire("s1:generate:p1")
	require.NoError(t, err)
	again()
}

func TestInFlight_ConcurrentAcquireSingleWinner(t *testing.T) {
	g := NewInFlight()
	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := g.Acquire("s1:approve:p1"); err == nil {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestActionKey(t *testing.T) {
	assert.Equal(t, "s1:plan", actionKey("s1", "plan"))
	assert.Equal(t, "s1:generate:p1", actionKey("s1", "generate", "p1"))
}
