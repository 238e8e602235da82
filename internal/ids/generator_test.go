package ids

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/swimlane/internal/types"
)

func TestSequence_Monotonic(t *testing.T) {
	t.Parallel()

	seq := NewSequence()
	assert.Equal(t, types.ID("1"), seq.Next())
	assert.Equal(t, types.ID("2"), seq.Next())
	assert.Equal(t, types.ID("3"), seq.Next())
}

func TestSequence_ConcurrentUnique(t *testing.T) {
	t.Parallel()

	seq := NewSequence()
	const workers, perWorker = 8, 250

	var mu sync.Mutex
	seen := make(map[types.ID]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id := seq.Next()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestUUIDs_Valid(t *testing.T) {
	t.Parallel()

	gen := UUIDs{}
	a, b := gen.Next(), gen.Next()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a.String())
	assert.NoError(t, err)
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		strategy string
		wantErr  error
	}{
		{name: "default", strategy: ""},
		{name: "sequence", strategy: StrategySequence},
		{name: "uuid", strategy: StrategyUUID},
		{name: "unknown", strategy: "snowflake", wantErr: ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := New(tt.strategy)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, gen.Next())
		})
	}
}
