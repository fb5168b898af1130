package trainingapp

import (
	"errors"
	"fmt"
	"github.com/burenotti/go_fitness_tracker/internal/domain/training"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"math"
	"slices"
	"strings"
)

var (
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	ErrInvalidParams      = errors.New("invalid workout params")
)

type WorkoutCode string

const (
	CodeSwimming      WorkoutCode = "SWM"
	CodeRunning       WorkoutCode = "RUN"
	CodeSportsWalking WorkoutCode = "WLK"
)

// ArityError reports a params list whose length does not match the workout type.
type ArityError struct {
	Code WorkoutCode
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d params, got %d", e.Code, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrInvalidParams
}

type runningParams struct {
	Action   float64 `validate:"gte=0,integral"`
	Duration float64 `validate:"finite,gt=0"`
	Weight   float64 `validate:"finite,gt=0"`
}

type walkingParams struct {
	Action   float64 `validate:"gte=0,integral"`
	Duration float64 `validate:"finite,gt=0"`
	Weight   float64 `validate:"finite,gt=0"`
	Height   float64 `validate:"finite,gt=0"`
}

type swimmingParams struct {
	Action     float64 `validate:"gte=0,integral"`
	Duration   float64 `validate:"finite,gt=0"`
	Weight     float64 `validate:"finite,gt=0"`
	PoolLength float64 `validate:"finite,gt=0"`
	PoolCount  float64 `validate:"gte=0,integral"`
}

type constructor struct {
	arity int
	build func(d *Dispatcher, p []float64) (training.Training, error)
}

var constructors = map[WorkoutCode]constructor{
	CodeRunning: {
		arity: 3,
		build: func(d *Dispatcher, p []float64) (training.Training, error) {
			params := runningParams{Action: p[0], Duration: p[1], Weight: p[2]}
			if err := d.validate(params); err != nil {
				return nil, err
			}
			return training.NewRunning(int(params.Action), params.Duration, params.Weight)
		},
	},
	CodeSportsWalking: {
		arity: 4,
		build: func(d *Dispatcher, p []float64) (training.Training, error) {
			params := walkingParams{Action: p[0], Duration: p[1], Weight: p[2], Height: p[3]}
			if err := d.validate(params); err != nil {
				return nil, err
			}
			return training.NewSportsWalking(int(params.Action), params.Duration, params.Weight, params.Height)
		},
	},
	CodeSwimming: {
		arity: 5,
		build: func(d *Dispatcher, p []float64) (training.Training, error) {
			params := swimmingParams{
				Action:     p[0],
				Duration:   p[1],
				Weight:     p[2],
				PoolLength: p[3],
				PoolCount:  p[4],
			}
			if err := d.validate(params); err != nil {
				return nil, err
			}
			return training.NewSwimming(
				int(params.Action),
				params.Duration,
				params.Weight,
				params.PoolLength,
				int(params.PoolCount),
			)
		},
	},
}

// SupportedCodes returns the recognized workout codes in lexical order.
func SupportedCodes() []WorkoutCode {
	codes := lo.Keys(constructors)
	slices.Sort(codes)
	return codes
}

type Dispatcher struct {
	validator *validator.Validate
}

func NewDispatcher() *Dispatcher {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("integral", isIntegral); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(err)
	}
	return &Dispatcher{validator: v}
}

// ReadPackage builds the calculator for a workout code from raw sensor params.
// Params are positional: action, duration, weight, then the type-specific ones.
func (d *Dispatcher) ReadPackage(code string, params []float64) (training.Training, error) {
	c, ok := constructors[WorkoutCode(code)]
	if !ok {
		supported := lo.Map(SupportedCodes(), func(c WorkoutCode, _ int) string {
			return string(c)
		})
		return nil, fmt.Errorf("%w %q, expected one of %s",
			ErrUnknownWorkoutType, code, strings.Join(supported, ", "))
	}

	if len(params) != c.arity {
		return nil, &ArityError{Code: WorkoutCode(code), Want: c.arity, Got: len(params)}
	}

	t, err := c.build(d, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", code, err)
	}
	return t, nil
}

func (d *Dispatcher) validate(params any) error {
	if err := d.validator.Struct(params); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return invalidParamsErr("%v", err)
		}
		return invalidParamsErr("%s: %s", errs[0].Field(), errs[0].Error())
	}
	return nil
}

// isIntegral accepts whole numbers that fit an int on every platform.
func isIntegral(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func invalidParamsErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrInvalidParams)
}
