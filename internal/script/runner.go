package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tradeverifyd/arrakis/internal/roster"
	"github.com/tradeverifyd/arrakis/pkg/arrakeener"
)

// ErrExpectation is returned when a step's outcome does not match its
// expect_error setting
var ErrExpectation = errors.New("expectation not met")

// ErrPartialUpdate is returned when a failed operation changed state
var ErrPartialUpdate = errors.New("failed operation changed state")

// StepResult is the outcome of one step
type StepResult struct {
	Index  int                 `json:"index" yaml:"index" cbor:"index"`
	Actor  string              `json:"actor" yaml:"actor" cbor:"actor"`
	Action string              `json:"action" yaml:"action" cbor:"action"`
	Amount *int64              `json:"amount,omitempty" yaml:"amount,omitempty" cbor:"amount,omitempty"`
	Delta  int64               `json:"delta" yaml:"delta" cbor:"delta"`
	Error  string              `json:"error,omitempty" yaml:"error,omitempty" cbor:"error,omitempty"`
	State  arrakeener.Snapshot `json:"state" yaml:"state" cbor:"state"`
}

// Report is the outcome of a whole script
type Report struct {
	Name    string                         `json:"name" yaml:"name" cbor:"name"`
	Results []StepResult                   `json:"results" yaml:"results" cbor:"results"`
	Final   map[string]arrakeener.Snapshot `json:"final" yaml:"final" cbor:"final"`
}

// Runner executes scripts. A Runner may be reused but not shared between
// goroutines.
type Runner struct {
	rng    arrakeener.Rand
	logger zerolog.Logger
	roster *roster.Roster
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithRand sets the random source given to every character the runner creates
func WithRand(r arrakeener.Rand) RunnerOption {
	return func(rn *Runner) {
		rn.rng = r
	}
}

// WithLogger sets the step logger
func WithLogger(logger zerolog.Logger) RunnerOption {
	return func(rn *Runner) {
		rn.logger = logger
	}
}

// NewRunner creates a runner. Without options it uses the process-wide
// random source and discards logs.
func NewRunner(opts ...RunnerOption) *Runner {
	rn := &Runner{logger: zerolog.Nop(), roster: roster.New()}
	for _, opt := range opts {
		opt(rn)
	}
	return rn
}

// Run executes s on a fresh roster. On failure the report holds the steps
// completed so far.
func (rn *Runner) Run(s *Script) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}

	r := rn.roster
	r.Clear()
	report := &Report{Name: s.Name}

	var opts []arrakeener.Option
	if rn.rng != nil {
		opts = append(opts, arrakeener.WithRand(rn.rng))
	}

	for _, c := range s.Characters {
		a := arrakeener.New(c.FirstName, c.LastName, c.Affiliation, c.Occupation, opts...)
		if err := r.Add(c.Handle, a); err != nil {
			return report, fmt.Errorf("failed to create character: %w", err)
		}
		rn.logger.Debug().
			Str("handle", c.Handle).
			Stringer("roster", r).
			Int64("energy", a.Energy()).
			Int64("solaris", a.Solaris()).
			Msg("character created")
	}

	for i, step := range s.Steps {
		result, err := rn.runStep(r, i, step)
		if err != nil {
			rn.logger.Error().Err(err).Int("step", i).Str("actor", step.Actor).Str("action", step.Action).Msg("step failed")
			return report, fmt.Errorf("step %d (%s %s): %w", i, step.Actor, step.Action, err)
		}
		report.Results = append(report.Results, *result)
	}

	report.Final = make(map[string]arrakeener.Snapshot, r.Size())
	for _, handle := range r.Handles() {
		a, err := r.Get(handle)
		if err != nil {
			return report, err
		}
		report.Final[handle] = a.Snapshot()
	}

	rn.logger.Info().Str("script", s.Name).Int("steps", len(report.Results)).Msg("script completed")
	return report, nil
}

func (rn *Runner) runStep(r *roster.Roster, index int, step Step) (*StepResult, error) {
	actor, err := r.Get(step.Actor)
	if err != nil {
		return nil, err
	}

	result := &StepResult{Index: index, Actor: step.Actor, Action: step.Action}
	before := actor.Snapshot()

	var opErr error
	switch step.Action {
	case ActionMine, ActionEat, ActionSell:
		var args []int64
		if amount, ok := stepAmount(step, before.Spice); ok {
			args = append(args, amount)
			result.Amount = &amount
		}
		result.Delta, opErr = counterOp(actor, step.Action)(args...)
	case ActionClone:
		_, opErr = r.Clone(step.Target, step.Actor)
	case ActionAlias:
		_, opErr = r.Alias(step.Target, step.Actor)
	case ActionSet:
		setField(actor, step.Field, step.Value)
	case ActionShow:
	}

	result.State = actor.Snapshot()

	if opErr != nil {
		result.Error = opErr.Error()
		if !result.State.SameCounters(before) {
			return nil, fmt.Errorf("%w: %v", ErrPartialUpdate, opErr)
		}
	}

	switch {
	case step.ExpectError == "" && opErr != nil:
		return nil, opErr
	case step.ExpectError != "" && opErr == nil:
		return nil, fmt.Errorf("%w: expected error containing %q, step succeeded", ErrExpectation, step.ExpectError)
	case step.ExpectError != "" && !strings.Contains(opErr.Error(), step.ExpectError):
		return nil, fmt.Errorf("%w: expected error containing %q, got %q", ErrExpectation, step.ExpectError, opErr.Error())
	}

	event := rn.logger.Debug().Int("step", index).Str("actor", step.Actor).Str("action", step.Action)
	if result.Amount != nil {
		event = event.Int64("amount", *result.Amount)
	}
	if opErr != nil {
		event = event.Str("expected_error", result.Error)
	}
	event.Int64("delta", result.Delta).
		Int64("energy", result.State.Energy).
		Int64("solaris", result.State.Solaris).
		Int64("spice", result.State.Spice).
		Msg("step done")

	return result, nil
}

// stepAmount resolves the explicit amount of a counter step, if any
func stepAmount(step Step, spice int64) (int64, bool) {
	switch {
	case step.Amount != nil:
		return *step.Amount, true
	case step.Divisor > 0:
		return spice / step.Divisor, true
	case step.Excess > 0:
		return spice + step.Excess, true
	default:
		return 0, false
	}
}

func counterOp(a *arrakeener.Arrakeener, action string) func(...int64) (int64, error) {
	switch action {
	case ActionMine:
		return a.MineSpice
	case ActionEat:
		return a.EatSpice
	default:
		return a.SellSpice
	}
}

func setField(a *arrakeener.Arrakeener, field, value string) {
	switch field {
	case FieldFirstName:
		a.SetFirstName(value)
	case FieldLastName:
		a.SetLastName(value)
	case FieldAffiliation:
		a.SetAffiliation(value)
	case FieldOccupation:
		a.SetOccupation(value)
	}
}
