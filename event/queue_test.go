package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRoundsCapacity(t *testing.T) {
	assert.Equal(t, 2, NewQueue[int](0).Cap())
	assert.Equal(t, 8, NewQueue[int](5).Cap())
	assert.Equal(t, 256, NewQueue[int](256).Cap())
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int](4)
	assert.Nil(t, q.Consume())

	for i := 1; i <= 3; i++ {
		require.True(t, q.Push(i))
	}
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{1, 2, 3}, q.Consume())
	assert.Zero(t, q.Len())
}

func TestQueueRejectsWhenFull(t *testing.T) {
	q := NewQueue[int](4)
	for i := 0; i < 4; i++ {
		require.True(t, q.Push(i))
	}
	assert.False(t, q.Push(99))
	assert.False(t, q.Push(100))
	assert.Equal(t, int64(2), q.Dropped())

	// Queued entries survive the overflow
	assert.Equal(t, []int{0, 1, 2, 3}, q.Consume())

	// Slots are reusable after draining
	require.True(t, q.Push(4))
	assert.Equal(t, []int{4}, q.Consume())
}

func TestQueueConsumeIntoReusesBuffer(t *testing.T) {
	q := NewQueue[string](8)
	q.Push("a")
	q.Push("b")

	buf := make([]string, 0, 8)
	buf = q.ConsumeInto(buf)
	assert.Equal(t, []string{"a", "b"}, buf)

	q.Push("c")
	buf = q.ConsumeInto(buf[:0])
	assert.Equal(t, []string{"c"}, buf)
}

func TestQueueWrapsManyLaps(t *testing.T) {
	q := NewQueue[int](4)
	next := 0
	for lap := 0; lap < 50; lap++ {
		for i := 0; i < 3; i++ {
			require.True(t, q.Push(lap*3+i))
		}
		for _, v := range q.Consume() {
			assert.Equal(t, next, v)
			next++
		}
	}
	assert.Equal(t, 150, next)
	assert.Zero(t, q.Dropped())
}

func TestQueueConcurrentProducers(t *testing.T) {
	const producers, perProducer = 8, 200
	q := NewQueue[int](producers * perProducer)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(base + i)
			}
		}(p * perProducer)
	}
	wg.Wait()

	got := q.Consume()
	require.Len(t, got, producers*perProducer)
	assert.Zero(t, q.Dropped())

	// Each producer's entries keep their relative order
	last := make(map[int]int)
	for _, v := range got {
		p := v / perProducer
		if prev, ok := last[p]; ok {
			assert.Greater(t, v, prev)
		}
		last[p] = v
	}
}
