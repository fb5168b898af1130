package messagebus

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/burenotti/go_fitness_tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	kind string
}

func (e testEvent) Type() string {
	return e.kind
}

func (e testEvent) PublishedAt() time.Time {
	return time.Time{}
}

func newTestBus() *MessageBus {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPublishEvents_CallsHandlersInOrder(t *testing.T) {
	bus := newTestBus()
	var calls []string
	bus.Register("a", func(domain.Event) error {
		calls = append(calls, "first")
		return nil
	})
	bus.Register("a", func(domain.Event) error {
		calls = append(calls, "second")
		return nil
	})
	bus.Register("b", func(domain.Event) error {
		calls = append(calls, "other")
		return nil
	})

	require.NoError(t, bus.PublishEvents(testEvent{kind: "a"}))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestPublishEvents_NoHandlers(t *testing.T) {
	bus := newTestBus()
	assert.NoError(t, bus.PublishEvents(testEvent{kind: "unknown"}))
	assert.NoError(t, bus.PublishEvents())
}

func TestPublishEvents_JoinsErrors(t *testing.T) {
	bus := newTestBus()
	errFirst := errors.New("first failed")
	errSecond := errors.New("second failed")
	delivered := 0
	bus.Register("a", func(domain.Event) error {
		delivered++
		return errFirst
	})
	bus.Register("a", func(domain.Event) error {
		delivered++
		return errSecond
	})

	err := bus.PublishEvents(testEvent{kind: "a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errSecond)
	assert.Equal(t, 2, delivered)
}
