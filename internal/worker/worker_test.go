package worker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolSingleWorkerOrder(t *testing.T) {
	p := NewPool(1)
	var got []int
	for i := 0; i < 10; i++ {
		i := i
		p.Submit(func() { got = append(got, i) })
	}
	p.Stop()
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	p := NewPool(0)
	done := false
	p.Submit(func() { done = true })
	p.Stop()
	require.True(t, done)
}

func TestPoolNilTask(t *testing.T) {
	p := NewPool(1)
	p.Submit(nil)
	p.Stop()
}
