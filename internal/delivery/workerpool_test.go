package delivery

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:       "Simple tasks",
			numTasks:   5,
			numWorkers: 2,
		},
		{
			name:           "Error in task",
			numTasks:       2,
			numWorkers:     2,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers, tt.numTasks)
			defer wp.Close()

			var mu sync.Mutex
			var executed, errorCount int
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				task := func(i int) Task {
					return func() error {
						defer wg.Done()
						if i == tt.numTasks-1 && tt.expectedErrors > 0 {
							mu.Lock()
							errorCount++
							mu.Unlock()
							return assert.AnError
						}
						time.Sleep(20 * time.Millisecond)
						mu.Lock()
						executed++
						mu.Unlock()
						return nil
					}
				}(i)

				require.NoError(t, wp.AddTask(context.Background(), task))
			}

			wg.Wait()

			assert.Equal(t, tt.numTasks-tt.expectedErrors, executed)
			assert.Equal(t, tt.expectedErrors, errorCount)
		})
	}
}

func TestWorkerPool_CloseDrainsQueue(t *testing.T) {
	wp := NewWorkerPool(1, 10)
	var done atomic.Int32

	for i := 0; i < 5; i++ {
		require.NoError(t, wp.AddTask(context.Background(), func() error {
			time.Sleep(5 * time.Millisecond)
			done.Add(1)
			return nil
		}))
	}
	wp.Close()

	assert.Equal(t, int32(5), done.Load())
	assert.ErrorIs(t, wp.AddTask(context.Background(), func() error { return nil }), ErrPoolClosed)
	wp.Close()
}

func TestWorkerPool_FullQueueHonoursContext(t *testing.T) {
	wp := NewWorkerPool(1, 0)
	defer wp.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error {
		close(started)
		<-release
		return nil
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := wp.AddTask(ctx, func() error { return nil })

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)
}

func TestWorkerPool_TryAddTaskDoesNotWait(t *testing.T) {
	wp := NewWorkerPool(1, 0)

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error {
		close(started)
		<-release
		return nil
	}))
	<-started

	begin := time.Now()
	err := wp.TryAddTask(func() error { return nil })

	assert.ErrorIs(t, err, ErrPoolFull)
	assert.Less(t, time.Since(begin), 100*time.Millisecond)

	close(release)
	wp.Close()
	assert.ErrorIs(t, wp.TryAddTask(func() error { return nil }), ErrPoolClosed)
}
