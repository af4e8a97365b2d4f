// pkg/scenario/scenario.go

// Package scenario runs season-stress experiments against a simulated
// course: establish a steady state, apply a shock, and watch whether the
// economics recover within the hypothesis.
package scenario

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Experiment defines one season-stress test.
type Experiment struct {
	Name        string
	Hypothesis  string
	SteadyState []Metric
	Method      []Shock
	Validation  []Assertion

	// WarmupDays runs before the steady state is validated.
	WarmupDays int
	// ObserveDays is the observation window after the first shock.
	ObserveDays int
}

// Metric is a measurable property of the simulated course.
type Metric struct {
	Name      string
	Query     func(*World) float64
	Threshold Threshold
}

type Threshold struct {
	Operator string // >, <, >=, <=, ==
	Value    float64
}

// Shock mutates the world on a given observation day. Day is relative to
// the start of the observation window.
type Shock struct {
	Day    int
	Type   string
	Target string
	Apply  func(*World)
}

// Assertion validates the experiment outcome against the final
// observation of a metric.
type Assertion struct {
	Metric    string
	Condition func(float64) bool
	Message   string
}

// Result captures one experiment run.
type Result struct {
	ExperimentName   string                 `json:"experiment_name"`
	StartTime        time.Time              `json:"start_time"`
	EndTime          time.Time              `json:"end_time"`
	HypothesisHeld   bool                   `json:"hypothesis_held"`
	SteadyStateValid bool                   `json:"steady_state_valid"`
	Violations       []MetricViolation      `json:"violations"`
	Observations     map[string][]DataPoint `json:"observations"`

	// RecoveryDays is how many days the course spent outside its steady
	// state before all metrics held again; nil when it never degraded or
	// never recovered.
	RecoveryDays *int `json:"recovery_days,omitempty"`
}

type MetricViolation struct {
	MetricName string  `json:"metric_name"`
	Expected   float64 `json:"expected"`
	Actual     float64 `json:"actual"`
	Day        int     `json:"day"`
}

type DataPoint struct {
	Day   int     `json:"day"`
	Value float64 `json:"value"`
}

// Engine orchestrates season-stress experiments.
type Engine struct {
	tracer      trace.Tracer
	newWorld    func() *World
	experiments []Experiment
	results     []Result
	mu          sync.Mutex
}

// NewEngine creates an engine. newWorld builds a fresh course per
// experiment; nil uses the default healthy course.
func NewEngine(newWorld func() *World) *Engine {
	if newWorld == nil {
		newWorld = NewWorld
	}
	return &Engine{
		tracer:      otel.Tracer("fairlinks/scenario"),
		newWorld:    newWorld,
		experiments: make([]Experiment, 0),
		results:     make([]Result, 0),
	}
}

// RegisterExperiment adds an experiment to the suite.
func (e *Engine) RegisterExperiment(exp Experiment) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.experiments = append(e.experiments, exp)
}

// GetExperiments returns the registered experiments.
func (e *Engine) GetExperiments() []Experiment {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.experiments
}

// Results returns the accumulated run results.
func (e *Engine) Results() []Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.results
}

// RunExperiment executes a single experiment on a fresh world.
func (e *Engine) RunExperiment(ctx context.Context, exp Experiment) (*Result, error) {
	_, span := e.tracer.Start(ctx, "scenario.run_experiment",
		trace.WithAttributes(
			attribute.String("experiment.name", exp.Name),
		),
	)
	defer span.End()

	result := &Result{
		ExperimentName: exp.Name,
		StartTime:      time.Now(),
		Observations:   make(map[string][]DataPoint),
	}

	world := e.newWorld()

	// Phase 1: warm up and validate the steady state.
	span.AddEvent("validating_steady_state")
	for i := 0; i < exp.WarmupDays; i++ {
		world.Advance()
	}
	if valid, violations := validateSteadyState(world, exp.SteadyState); !valid {
		result.Violations = violations
		return result, errors.New("steady state invalid - aborting experiment")
	}
	result.SteadyStateValid = true

	// Phase 2+3: observe day by day, applying shocks on their days.
	span.AddEvent("observing_season")
	degradedSince := -1
	recovered := false

	for day := 0; day < exp.ObserveDays; day++ {
		for _, shock := range exp.Method {
			if shock.Day == day {
				span.AddEvent("applying_shock", trace.WithAttributes(
					attribute.String("shock.type", shock.Type),
					attribute.String("shock.target", shock.Target),
					attribute.Int("shock.day", day),
				))
				shock.Apply(world)
			}
		}

		world.Advance()

		dayHolds := true
		for _, metric := range exp.SteadyState {
			value := metric.Query(world)
			result.Observations[metric.Name] = append(
				result.Observations[metric.Name],
				DataPoint{Day: day, Value: value},
			)

			if !evaluateThreshold(value, metric.Threshold) {
				dayHolds = false
				result.Violations = append(result.Violations, MetricViolation{
					MetricName: metric.Name,
					Expected:   metric.Threshold.Value,
					Actual:     value,
					Day:        day,
				})
			}
		}

		if !dayHolds {
			if degradedSince < 0 {
				degradedSince = day
			}
			recovered = false
		} else if degradedSince >= 0 && !recovered {
			days := day - degradedSince
			result.RecoveryDays = &days
			recovered = true
		}
	}

	// Phase 4: validate assertions.
	span.AddEvent("validating_assertions")
	result.HypothesisHeld = validateAssertions(exp.Validation, result)
	result.EndTime = time.Now()

	e.mu.Lock()
	e.results = append(e.results, *result)
	e.mu.Unlock()

	span.SetAttributes(
		attribute.Bool("hypothesis_held", result.HypothesisHeld),
		attribute.Int("violations", len(result.Violations)),
	)

	return result, nil
}

// RunAll executes every registered experiment, continuing past failed
// hypotheses, and returns the first run error if any.
func (e *Engine) RunAll(ctx context.Context) ([]Result, error) {
	ctx, span := e.tracer.Start(ctx, "scenario.run_all")
	defer span.End()

	var firstErr error
	out := make([]Result, 0, len(e.GetExperiments()))
	for _, exp := range e.GetExperiments() {
		res, err := e.RunExperiment(ctx, exp)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if res != nil {
			out = append(out, *res)
		}
	}
	return out, firstErr
}

func validateSteadyState(world *World, metrics []Metric) (bool, []MetricViolation) {
	violations := make([]MetricViolation, 0)

	for _, metric := range metrics {
		value := metric.Query(world)
		if !evaluateThreshold(value, metric.Threshold) {
			violations = append(violations, MetricViolation{
				MetricName: metric.Name,
				Expected:   metric.Threshold.Value,
				Actual:     value,
				Day:        -1,
			})
		}
	}

	return len(violations) == 0, violations
}

func evaluateThreshold(value float64, threshold Threshold) bool {
	switch threshold.Operator {
	case ">":
		return value > threshold.Value
	case "<":
		return value < threshold.Value
	case ">=":
		return value >= threshold.Value
	case "<=":
		return value <= threshold.Value
	case "==":
		return value == threshold.Value
	default:
		return false
	}
}

func validateAssertions(assertions []Assertion, result *Result) bool {
	for _, assertion := range assertions {
		observations, exists := result.Observations[assertion.Metric]
		if !exists || len(observations) == 0 {
			return false
		}

		finalValue := observations[len(observations)-1].Value
		if !assertion.Condition(finalValue) {
			return false
		}
	}

	return true
}
