package training

import (
	"fmt"
	"time"
)

const EventSummaryBuilt = "training.summary_built"

// InfoMessage is the computed summary of a single workout.
type InfoMessage struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

func NewInfoMessage(trainingType string, duration, distance, speed, calories float64) InfoMessage {
	return InfoMessage{
		TrainingType: trainingType,
		Duration:     duration,
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}
}

func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Training type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories spent: %.3f.",
		m.TrainingType,
		m.Duration,
		m.Distance,
		m.Speed,
		m.Calories,
	)
}

func (m InfoMessage) String() string {
	return m.Message()
}

type SummaryBuiltEvent struct {
	At      time.Time
	Code    string
	Summary InfoMessage
}

func (e SummaryBuiltEvent) Type() string {
	return EventSummaryBuilt
}

func (e SummaryBuiltEvent) PublishedAt() time.Time {
	return e.At
}
