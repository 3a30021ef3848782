package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"

	"github.com/allisson/gamestats/internal/stats/domain"
	usecaseMocks "github.com/allisson/gamestats/internal/stats/usecase/mocks"
)

// runGenerator starts a generator whose Generate returns (match, err), waits for ticks calls
// and returns the mock with the error Start exits with after cancellation.
func runGenerator(t *testing.T, match *domain.Match, err error, ticks int) (*usecaseMocks.MockMatchUseCase, error) {
	t.Helper()

	called := make(chan struct{}, ticks)
	useCase := &usecaseMocks.MockMatchUseCase{}
	useCase.On("Generate", mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case called <- struct{}{}:
			default:
			}
		}).
		Return(match, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	generator := NewMatchGenerator(5*time.Millisecond, useCase, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- generator.Start(ctx) }()

	for range ticks {
		select {
		case <-called:
		case <-time.After(2 * time.Second):
			t.Fatal("generator did not tick")
		}
	}
	cancel()

	select {
	case startErr := <-done:
		return useCase, startErr
	case <-time.After(2 * time.Second):
		t.Fatal("generator did not stop")
		return useCase, nil
	}
}

func TestMatchGenerator_Start(t *testing.T) {
	t.Run("GeneratesOnEveryTick", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		useCase, err := runGenerator(t, &domain.Match{ID: "m1"}, nil, 3)

		assert.ErrorIs(t, err, context.Canceled)
		assert.GreaterOrEqual(t, len(useCase.Calls), 3)
	})

	t.Run("KeepsRunningWithoutData", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		useCase, err := runGenerator(t, nil, domain.ErrNotEnoughData, 2)

		assert.ErrorIs(t, err, context.Canceled)
		assert.GreaterOrEqual(t, len(useCase.Calls), 2)
	})

	t.Run("KeepsRunningAfterErrors", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		useCase, err := runGenerator(t, nil, errors.New("redis down"), 2)

		assert.ErrorIs(t, err, context.Canceled)
		assert.GreaterOrEqual(t, len(useCase.Calls), 2)
	})
}

func TestMatchGenerator_StopsImmediatelyOnCancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	useCase := &usecaseMocks.MockMatchUseCase{}
	generator := NewMatchGenerator(time.Hour, useCase, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := generator.Start(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	useCase.AssertNotCalled(t, "Generate", mock.Anything)
}
