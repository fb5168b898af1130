package trainingapp

import (
	"fmt"
	"github.com/burenotti/go_fitness_tracker/internal/domain"
	"github.com/burenotti/go_fitness_tracker/internal/domain/training"
	"io"
	"log/slog"
	"time"
)

type MessageBus interface {
	PublishEvents(events ...domain.Event) error
}

// Package is a single sensor reading: a workout code and its positional params.
type Package struct {
	Code   string
	Params []float64
}

type Service struct {
	logger     *slog.Logger
	dispatcher *Dispatcher
	msgBus     MessageBus
	now        func() time.Time
}

func New(logger *slog.Logger, msgBus MessageBus) *Service {
	return &Service{
		logger:     logger,
		dispatcher: NewDispatcher(),
		msgBus:     msgBus,
		now:        time.Now,
	}
}

func (s *Service) Process(pkg Package) (training.InfoMessage, error) {
	t, err := s.dispatcher.ReadPackage(pkg.Code, pkg.Params)
	if err != nil {
		return training.InfoMessage{}, err
	}

	summary := t.Summary()

	err = s.msgBus.PublishEvents(training.SummaryBuiltEvent{
		At:      s.now().UTC(),
		Code:    pkg.Code,
		Summary: summary,
	})
	if err != nil {
		s.logger.Error("failed to publish events", "error", err)
		return training.InfoMessage{}, err
	}

	return summary, nil
}

// Run processes packages in order and writes one summary line per package.
// It stops at the first package that fails.
func (s *Service) Run(w io.Writer, packages []Package) error {
	for i, pkg := range packages {
		summary, err := s.Process(pkg)
		if err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}
		if _, err := fmt.Fprintln(w, summary.Message()); err != nil {
			return fmt.Errorf("package %d: write summary: %w", i, err)
		}
	}
	s.logger.Debug("all packages processed", "count", len(packages))
	return nil
}
