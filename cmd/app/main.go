package main

import (
	"flag"
	"fmt"
	"github.com/burenotti/go_fitness_tracker/internal/app/messagebus"
	"github.com/burenotti/go_fitness_tracker/internal/app/trainingapp"
	"github.com/burenotti/go_fitness_tracker/internal/config"
	"github.com/burenotti/go_fitness_tracker/internal/domain"
	"github.com/burenotti/go_fitness_tracker/internal/domain/training"
	"log/slog"
	"os"
)

var packages = []trainingapp.Package{
	{Code: "SWM", Params: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Params: []float64{15000, 1, 75}},
	{Code: "WLK", Params: []float64{9000, 1, 75, 180}},
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger := initLogger(cfg)

	bus := messagebus.New(logger)
	bus.Register(training.EventSummaryBuilt, logSummary(logger))

	service := trainingapp.New(logger, bus)

	if err := service.Run(os.Stdout, packages); err != nil {
		logger.Error("failed to process trainings", "error", err)
		os.Exit(1)
	}
}

func logSummary(logger *slog.Logger) messagebus.EventHandler {
	return func(event domain.Event) error {
		e, ok := event.(training.SummaryBuiltEvent)
		if !ok {
			return fmt.Errorf("unexpected event %T for %s", event, training.EventSummaryBuilt)
		}
		logger.Debug("training summary built",
			"code", e.Code,
			"type", e.Summary.TrainingType,
			"calories", e.Summary.Calories,
		)
		return nil
	}
}

func initLogger(cfg *config.Config) *slog.Logger {
	level, err := cfg.Log.Level.Level()
	if err != nil {
		panic("invalid log level: " + err.Error())
	}

	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		})
	case config.Production:
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: false,
			Level:     level,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}
