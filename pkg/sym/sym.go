// Package sym is the public surface of symshape: the tagged symbolic
// scalars, the node contract, the reference expression backend, and the
// guard ledger.
package sym

import (
	"github.com/funvibe/symshape/internal/guardlog"
	"github.com/funvibe/symshape/internal/shapeexpr"
	"github.com/funvibe/symshape/internal/symint"
	"github.com/funvibe/symshape/internal/symnode"
)

// Scalars.
type (
	Int   = symint.SymInt
	Float = symint.SymFloat
)

// Node contract.
type (
	Node     = symnode.Node
	NodeImpl = symnode.NodeImpl
	Location = symnode.Location
)

// Reference backend.
type (
	Env   = shapeexpr.Env
	Hints = shapeexpr.Hints
)

// Guard ledger.
type (
	GuardEvent    = guardlog.Event
	GuardRecorder = guardlog.Recorder
	GuardStore    = guardlog.Store
)

// ErrUnbacked marks a forcing failure on a variable with no hint.
var ErrUnbacked = shapeexpr.ErrUnbacked

// NewInt constructs a concrete integer scalar.
func NewInt(v int64) Int { return symint.New(v) }

// IntFromNode packs an owned node reference into a symbolic scalar,
// consuming the caller's ownership.
func IntFromNode(n *Node) Int { return symint.FromNode(n) }

// NewFloat constructs a concrete float scalar.
func NewFloat(v float64) Float { return symint.NewFloat(v) }

// FloatFromNode packs an owned node reference into a symbolic float
// scalar, consuming the caller's ownership.
func FloatFromNode(n *Node) Float { return symint.FromNodeFloat(n) }

// NewEnv constructs a fresh expression environment (one backend family).
func NewEnv() *Env { return shapeexpr.NewEnv() }

// NewNode wraps a backend implementation into an owned handle.
func NewNode(impl NodeImpl) *Node { return symnode.NewNode(impl) }

// OpenGuardStore opens a SQLite-backed guard ledger.
func OpenGuardStore(path string) (*GuardStore, error) { return guardlog.Open(path) }

// NewMemoryRecorder returns an in-process guard recorder.
func NewMemoryRecorder() *guardlog.Memory { return guardlog.NewMemory() }
