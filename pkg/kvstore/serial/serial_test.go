package serial

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoReturnsFnError(t *testing.T) {
	g := NewGuard()
	sentinel := errors.New("boom")

	err := g.Do("k", func() error { return sentinel })
	assert.ErrorIs(t, err, sentinel)

	require.NoError(t, g.Do("k", func() error { return nil }))
}

// Racing read-modify-write cycles on the same key must not lose updates.
func TestDoSerializesSameKey(t *testing.T) {
	g := NewGuard()

	counter := 0
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Do("shared", func() error {
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, n, counter)
}

func TestDistinctKeysDoNotBlockEachOther(t *testing.T) {
	g := NewGuard()

	release := make(chan struct{})
	held := make(chan struct{})

	go func() {
		_ = g.Do("a", func() error {
			close(held)
			<-release
			return nil
		})
	}()

	<-held
	// must complete while "a" is still held
	err := g.Do("b", func() error { return nil })
	require.NoError(t, err)
	close(release)
}
