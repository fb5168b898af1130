package messagebus

import (
	"errors"
	"fmt"
	"github.com/burenotti/go_fitness_tracker/internal/domain"
	"log/slog"
)

type EventHandler func(event domain.Event) error

// MessageBus delivers events to handlers on the publisher's goroutine,
// in registration order.
type MessageBus struct {
	logger   *slog.Logger
	handlers map[string][]EventHandler
}

func New(logger *slog.Logger) *MessageBus {
	return &MessageBus{
		logger:   logger,
		handlers: make(map[string][]EventHandler),
	}
}

func (b *MessageBus) Register(eventType string, handler EventHandler) {
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func (b *MessageBus) PublishEvents(events ...domain.Event) error {
	var errs []error
	for _, event := range events {
		for _, handler := range b.handlers[event.Type()] {
			if err := handler(event); err != nil {
				b.logger.Error("failed to handle event", "type", event.Type(), "err", err)
				errs = append(errs, fmt.Errorf("%s: %w", event.Type(), err))
			}
		}
	}
	return errors.Join(errs...)
}
