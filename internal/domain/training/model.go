package training

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidDuration    = errors.New("training duration must be positive")
	ErrInvalidMeasurement = errors.New("invalid training measurement")
)

const (
	TypeRunning       = "Running"
	TypeSportsWalking = "SportsWalking"
	TypeSwimming      = "Swimming"
)

const (
	mInKm     = 1000
	minInHour = 60
)

// Training is a closed set of workout calculators. Only Running, SportsWalking
// and Swimming implement it.
type Training interface {
	Type() string
	DurationH() float64
	DistanceKm() float64
	MeanSpeedKmH() float64
	SpentCalories() float64
	Summary() InfoMessage
	sealed()
}

type base struct {
	Action   int
	Duration float64
	Weight   float64
	lenStep  float64
}

func newBase(action int, duration, weight, lenStep float64) (base, error) {
	if !(duration > 0) || math.IsInf(duration, 1) {
		return base{}, fmt.Errorf("%w: got %v h", ErrInvalidDuration, duration)
	}
	if action < 0 {
		return base{}, fmt.Errorf("%w: negative action count %d", ErrInvalidMeasurement, action)
	}
	if err := checkPositive("weight", weight); err != nil {
		return base{}, err
	}
	return base{
		Action:   action,
		Duration: duration,
		Weight:   weight,
		lenStep:  lenStep,
	}, nil
}

func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidMeasurement, name, v)
	}
	return nil
}

func (b *base) DurationH() float64 {
	return b.Duration
}

func (b *base) DistanceKm() float64 {
	return float64(b.Action) * b.lenStep / mInKm
}

func (b *base) MeanSpeedKmH() float64 {
	return b.DistanceKm() / b.Duration
}

func (*base) sealed() {}

func summarize(t Training) InfoMessage {
	return NewInfoMessage(
		t.Type(),
		t.DurationH(),
		t.DistanceKm(),
		t.MeanSpeedKmH(),
		t.SpentCalories(),
	)
}

const (
	runningLenStep         = 0.65
	runningSpeedMultiplier = 18
	runningSpeedShift      = 20
)

type Running struct {
	base
}

func NewRunning(action int, duration, weight float64) (*Running, error) {
	b, err := newBase(action, duration, weight, runningLenStep)
	if err != nil {
		return nil, err
	}
	return &Running{base: b}, nil
}

func (*Running) Type() string {
	return TypeRunning
}

func (r *Running) SpentCalories() float64 {
	speed := r.MeanSpeedKmH()
	return (runningSpeedMultiplier*speed - runningSpeedShift) *
		r.Weight / mInKm * (r.Duration * minInHour)
}

func (r *Running) Summary() InfoMessage {
	return summarize(r)
}

const (
	walkingLenStep        = 0.65
	walkingWeightFactor   = 0.035
	walkingSpeedHeightMul = 0.029
)

type SportsWalking struct {
	base
	Height float64
}

func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	b, err := newBase(action, duration, weight, walkingLenStep)
	if err != nil {
		return nil, err
	}
	if err := checkPositive("height", height); err != nil {
		return nil, err
	}
	return &SportsWalking{base: b, Height: height}, nil
}

func (*SportsWalking) Type() string {
	return TypeSportsWalking
}

// SpentCalories floors speed²/height before scaling it, so walks slower than
// sqrt(height) km/h only burn the weight-based part.
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeedKmH()
	ratio := math.Floor(speed * speed / w.Height)
	return (walkingWeightFactor*w.Weight + ratio*walkingSpeedHeightMul*w.Weight) *
		(w.Duration * minInHour)
}

func (w *SportsWalking) Summary() InfoMessage {
	return summarize(w)
}

const (
	swimmingLenStep     = 1.38
	swimmingSpeedShift  = 1.1
	swimmingWeightRatio = 2
)

type Swimming struct {
	base
	PoolLength float64
	PoolCount  int
}

func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) (*Swimming, error) {
	b, err := newBase(action, duration, weight, swimmingLenStep)
	if err != nil {
		return nil, err
	}
	if err := checkPositive("pool length", poolLength); err != nil {
		return nil, err
	}
	if poolCount < 0 {
		return nil, fmt.Errorf("%w: negative pool count %d", ErrInvalidMeasurement, poolCount)
	}
	return &Swimming{base: b, PoolLength: poolLength, PoolCount: poolCount}, nil
}

func (*Swimming) Type() string {
	return TypeSwimming
}

// MeanSpeedKmH is derived from the pool geometry, not from the stroke count.
func (s *Swimming) MeanSpeedKmH() float64 {
	return s.PoolLength * float64(s.PoolCount) / mInKm / s.Duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeedKmH() + swimmingSpeedShift) * swimmingWeightRatio * s.Weight
}

func (s *Swimming) Summary() InfoMessage {
	return summarize(s)
}
