package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestWithBackoffSucceedsAfterPending(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), PollConfig(5, time.Millisecond), zaptest.NewLogger(t), "poll", func() error {
		calls++
		if calls < 3 {
			return errors.New("pending")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithBackoffStopsOnPermanent(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := WithBackoff(context.Background(), PollConfig(5, time.Millisecond), zaptest.NewLogger(t), "poll", func() error {
		calls++
		return Permanent(boom)
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestWithBackoffExhaustsAttempts(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), PollConfig(3, time.Millisecond), zaptest.NewLogger(t), "poll", func() error {
		calls++
		return errors.New("pending")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll failed after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestWithBackoffHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := WithBackoff(ctx, PollConfig(3, time.Second), zaptest.NewLogger(t), "poll", func() error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoffCapsAtMax(t *testing.T) {
	cfg := Config{InitialDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2}
	assert.Equal(t, time.Second, calculateBackoff(cfg, 1))
	assert.Equal(t, 2*time.Second, calculateBackoff(cfg, 2))
	assert.Equal(t, 3*time.Second, calculateBackoff(cfg, 5))
	assert.Equal(t, time.Second, calculateBackoff(PollConfig(5, time.Second), 4))
}
