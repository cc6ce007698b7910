package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_FIFO(t *testing.T) {
	q := NewInMemoryQueue[int](0)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	assert.Equal(t, 5, q.Size())

	for i := 0; i < 5; i++ {
		item, ok := q.TryDequeue()
		require.True(t, ok)
		assert.Equal(t, i, item)
	}
	_, ok := q.TryDequeue()
	assert.False(t, ok)
}

func TestInMemoryQueue_Capacity(t *testing.T) {
	q := NewInMemoryQueue[string](2)
	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	assert.ErrorIs(t, q.Enqueue("c"), ErrQueueFull)

	assert.Equal(t, []string{"a", "b"}, q.ReadAllMessages())
	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_Close(t *testing.T) {
	q := NewInMemoryQueue[int](0)
	require.NoError(t, q.Enqueue(1))
	q.Close()
	q.Close()

	assert.ErrorIs(t, q.Enqueue(2), ErrQueueClosed)
	item, ok := q.TryDequeue()
	require.True(t, ok)
	assert.Equal(t, 1, item)

	select {
	case <-q.Ready():
	default:
		t.Fatal("expected ready signal after close")
	}
}

func TestInMemoryQueue_ConcurrentProducers(t *testing.T) {
	q := NewInMemoryQueue[int](0)
	const producers, perProducer = 8, 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				assert.NoError(t, q.Enqueue(i))
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.ReadAllMessages(), producers*perProducer)
}
