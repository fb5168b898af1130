package trainingapp

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/burenotti/go_fitness_tracker/internal/app/messagebus"
	"github.com/burenotti/go_fitness_tracker/internal/domain"
	"github.com/burenotti/go_fitness_tracker/internal/domain/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePackages = []Package{
	{Code: "SWM", Params: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Params: []float64{15000, 1, 75}},
	{Code: "WLK", Params: []float64{9000, 1, 75, 180}},
}

func newTestService(t *testing.T) (*Service, *[]training.SummaryBuiltEvent) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := messagebus.New(logger)

	var events []training.SummaryBuiltEvent
	bus.Register(training.EventSummaryBuilt, func(event domain.Event) error {
		events = append(events, event.(training.SummaryBuiltEvent))
		return nil
	})

	s := New(logger, bus)
	s.now = func() time.Time {
		return time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	}
	return s, &events
}

func TestService_Run(t *testing.T) {
	s, events := newTestService(t)
	var out bytes.Buffer

	require.NoError(t, s.Run(&out, samplePackages))

	want := strings.Join([]string{
		"Training type: Swimming; Duration: 1.000 h; Distance: 0.994 km; Mean speed: 1.000 km/h; Calories spent: 336.000.",
		"Training type: Running; Duration: 1.000 h; Distance: 9.750 km; Mean speed: 9.750 km/h; Calories spent: 699.750.",
		"Training type: SportsWalking; Duration: 1.000 h; Distance: 5.850 km; Mean speed: 5.850 km/h; Calories spent: 157.500.",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())

	require.Len(t, *events, 3)
	assert.Equal(t, "SWM", (*events)[0].Code)
	assert.Equal(t, training.TypeRunning, (*events)[1].Summary.TrainingType)
	assert.Equal(t, time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC), (*events)[2].PublishedAt())
}

func TestService_RunStopsAtFirstError(t *testing.T) {
	s, events := newTestService(t)
	var out bytes.Buffer

	err := s.Run(&out, []Package{
		{Code: "RUN", Params: []float64{15000, 1, 75}},
		{Code: "XYZ", Params: []float64{1, 1, 1}},
		{Code: "WLK", Params: []float64{9000, 1, 75, 180}},
	})

	require.ErrorIs(t, err, ErrUnknownWorkoutType)
	assert.Contains(t, err.Error(), "package 1")
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
	assert.Len(t, *events, 1)
}

func TestService_ProcessPublishFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := messagebus.New(logger)
	errHandler := errors.New("handler failed")
	bus.Register(training.EventSummaryBuilt, func(domain.Event) error {
		return errHandler
	})

	_, err := New(logger, bus).Process(samplePackages[1])
	assert.ErrorIs(t, err, errHandler)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestService_RunWriteFailure(t *testing.T) {
	s, _ := newTestService(t)

	err := s.Run(failingWriter{}, samplePackages)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
