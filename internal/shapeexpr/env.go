// Package shapeexpr is the reference symbolic-expression backend. It
// builds plain expression trees over named integer variables and resolves
// them against per-variable hints when a value is forced. No algebraic
// simplification is performed.
package shapeexpr

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/funvibe/symshape/internal/guardlog"
	"github.com/funvibe/symshape/internal/symnode"
)

// Env is one backend family. Nodes created by different Envs must never be
// combined; every binary operation checks this.
//
// An Env carries the hints used to resolve variables at guard time, an
// optional guard recorder, and instrumentation counters used by tests to
// observe wrap calls and node lifetimes.
type Env struct {
	mu    sync.RWMutex
	hints map[string]int64

	recorder guardlog.Recorder
	logger   *slog.Logger

	wraps atomic.Int64
	live  atomic.Int64
}

func NewEnv() *Env {
	return &Env{
		hints:  make(map[string]int64),
		logger: slog.Default(),
	}
}

// SetRecorder installs the guard recorder. Nil disables recording.
func (e *Env) SetRecorder(r guardlog.Recorder) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recorder = r
}

// SetLogger replaces the logger used to report recorder failures.
func (e *Env) SetLogger(l *slog.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger = l
}

// SetHint binds a variable name to the concrete value used when a guard
// forces an expression containing it.
func (e *Env) SetHint(name string, v int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hints[name] = v
}

func (e *Env) hint(name string) (int64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.hints[name]
	return v, ok
}

// Var returns an owned handle to a fresh variable node. The variable does
// not need a hint until something forces an expression containing it.
func (e *Env) Var(name string) *symnode.Node {
	return symnode.NewNode(e.newExpr(&Expr{kind: kindVar, name: name}))
}

// Lit returns an owned handle to a literal node. Mostly useful in tests;
// scalar code reaches literals through the Wrap factory instead.
func (e *Env) Lit(v int64) *symnode.Node {
	return symnode.NewNode(e.newExpr(&Expr{kind: kindIntLit, ival: v}))
}

// Wraps reports how many literals have been wrapped through the factory.
func (e *Env) Wraps() int64 {
	return e.wraps.Load()
}

// Live reports the number of nodes created by this Env whose last
// reference has not yet been released.
func (e *Env) Live() int64 {
	return e.live.Load()
}

// newExpr adopts x into this family and counts it as live.
func (e *Env) newExpr(x *Expr) *Expr {
	x.env = e
	e.live.Add(1)
	return x
}

func (e *Env) record(kind, expr, value string, loc symnode.Location) {
	e.mu.RLock()
	r := e.recorder
	l := e.logger
	e.mu.RUnlock()
	if r == nil {
		return
	}
	err := r.Record(guardlog.Event{
		ID:    uuid.New(),
		Expr:  expr,
		Kind:  kind,
		Value: value,
		File:  loc.File,
		Line:  loc.Line,
		At:    time.Now(),
	})
	if err != nil && l != nil {
		l.Warn("guard event dropped", "expr", expr, "error", err)
	}
}
