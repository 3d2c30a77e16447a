// Package engine ties the manifest, target and toolchain together and
// decides which capabilities are enabled for a build.
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goplus/capcheck/compat"
	clog "github.com/goplus/capcheck/internal/log"
	"github.com/goplus/capcheck/manifest"
	"github.com/goplus/capcheck/toolchain"
)

// Engine evaluates tasks.
type Engine struct {
	ev  manifest.Evaluator
	log *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithEvaluator replaces the cfg predicate evaluator.
func WithEvaluator(ev manifest.Evaluator) Option {
	return func(e *Engine) { e.ev = ev }
}

// WithLogger sets the logger decisions are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{ev: manifest.DefaultEvaluator, log: clog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Task is one evaluation: a manifest checked for a target against a
// toolchain that has already been identified.
type Task struct {
	Manifest  *manifest.Manifest
	Target    string
	Toolchain *toolchain.Descriptor
}

// Result is the outcome of a Task.
type Result struct {
	Target    string
	Toolchain *toolchain.Descriptor

	// Applicable holds the checks that apply to the target, Enabled those
	// the toolchain also satisfies. Both keep declaration order.
	Applicable []compat.Check
	Enabled    []compat.Check
}

// Exec evaluates task. The toolchain is validated before anything else;
// the target is only consulted when a platform group is reached.
func (e *Engine) Exec(task *Task) (*Result, error) {
	if err := task.Toolchain.Validate(); err != nil {
		return nil, err
	}
	if task.Manifest == nil {
		return nil, fmt.Errorf("engine: no manifest")
	}
	applicable, err := manifest.Flatten(task.Manifest, task.Target, e.ev)
	if err != nil {
		return nil, err
	}
	var decide func(compat.Check, bool)
	if e.log.Core().Enabled(zap.DebugLevel) {
		decide = func(c compat.Check, enabled bool) {
			e.log.Debug("capability",
				zap.String("name", c.Name),
				zap.Stringer("condition", c.Condition),
				zap.Bool("enabled", enabled))
		}
	}
	enabled := compat.EnableFunc(applicable, task.Toolchain, decide)
	e.log.Debug("evaluated",
		zap.String("target", task.Target),
		zap.Stringer("toolchain", task.Toolchain),
		zap.Int("applicable", len(applicable)),
		zap.Int("enabled", len(enabled)))

	return &Result{
		Target:     task.Target,
		Toolchain:  task.Toolchain,
		Applicable: applicable,
		Enabled:    enabled,
	}, nil
}

// Toolchain identifies the toolchain: token is parsed when given,
// otherwise prober is run.
func (e *Engine) Toolchain(ctx context.Context, token string, prober *toolchain.Prober) (*toolchain.Descriptor, error) {
	if token != "" {
		return toolchain.ParseRelease(token)
	}
	if prober == nil {
		return nil, &toolchain.ProbeError{Reason: "no release given and no compiler to probe"}
	}
	tc, err := prober.Probe(ctx)
	if err != nil {
		return nil, err
	}
	e.log.Debug("probed toolchain",
		zap.String("compiler", prober.Compiler()),
		zap.Stringer("toolchain", tc),
		zap.String("host", tc.Host()))
	return tc, nil
}
