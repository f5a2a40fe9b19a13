package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLocks_SerializesSameSession(t *testing.T) {
	locks := NewSessionLocks()
	const workers = 16

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.Acquire("session-a")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestSessionLocks_IndependentSessionsDoNotBlock(t *testing.T) {
	locks := NewSessionLocks()

	releaseA := locks.Acquire("a")
	defer releaseA()

	done := make(chan struct{})
	go func() {
		release := locks.Acquire("b")
		release()
		close(done)
	}()
	<-done
}

func TestSessionLocks_EntriesAreReleased(t *testing.T) {
	locks := NewSessionLocks()

	release := locks.Acquire("a")
	release()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.locks, "released entries must not accumulate")
}
