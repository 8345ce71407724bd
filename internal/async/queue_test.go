package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	mu    sync.Mutex
	ids   []uuid.UUID
	block chan struct{} // when non-nil, Process waits on it
}

func (r *countingRunner) Process(_ context.Context, id uuid.UUID) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
	return nil
}

func (r *countingRunner) seen() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uuid.UUID, len(r.ids))
	copy(out, r.ids)
	return out
}

func TestQueueProcessesJobs(t *testing.T) {
	runner := &countingRunner{}
	q := NewProcessorQueue(runner, nil, WithWorkers(2), WithQueueSize(8))

	want := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range want {
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: id}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.ElementsMatch(t, want, runner.seen())
}

func TestQueueFullReturnsError(t *testing.T) {
	runner := &countingRunner{block: make(chan struct{})}
	q := NewProcessorQueue(runner, nil, WithWorkers(1), WithQueueSize(1))

	// first job occupies the worker, second fills the buffer
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	var err error
	// the worker may not have picked up the first job yet; allow one retry
	for i := 0; i < 50; i++ {
		err = q.Enqueue(context.Background(), Job{DocumentID: uuid.New()})
		if err == nil {
			continue
		}
		break
	}
	assert.ErrorIs(t, err, ErrQueueFull)

	close(runner.block)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)
}

func TestEnqueueAfterShutdownFails(t *testing.T) {
	q := NewProcessorQueue(&countingRunner{}, nil, WithWorkers(1))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Error(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
}

func TestShutdownIsIdempotent(t *testing.T) {
	q := NewProcessorQueue(&countingRunner{}, nil, WithWorkers(1))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
