package expr

import (
	"github.com/boolalg/expr/internal/enode"
)

// Manager is the factory for Handle values: every construction and
// transformation in this package goes through a Manager, which owns the
// scratch workspace the canonicalizing operators use internally.
type Manager struct {
	m *enode.Manager
}

// NewManager returns a ready-to-use Manager.
func NewManager() *Manager {
	return &Manager{m: enode.NewManager()}
}

// Zero returns the constant-false expression.
func (mgr *Manager) Zero() Handle { return Handle{m: mgr.m, n: mgr.m.Zero()} }

// One returns the constant-true expression.
func (mgr *Manager) One() Handle { return Handle{m: mgr.m, n: mgr.m.One()} }

// Literal returns the positive-polarity literal for varid.
func (mgr *Manager) Literal(varid int) Handle {
	return Handle{m: mgr.m, n: mgr.m.PosLit(varid)}
}

// NegLiteral returns the negative-polarity literal for varid.
func (mgr *Manager) NegLiteral(varid int) Handle {
	return Handle{m: mgr.m, n: mgr.m.NegLit(varid)}
}

// Invalid returns the invalid Handle, carrying mgr. Compose, ComposeMap,
// RemapVar and Simplify on it return another invalid Handle on mgr
// rather than panicking; And, Or, Xor and Not panic when any operand is
// invalid. It is equivalent to the zero Handle{} except that it
// remembers mgr.
func (mgr *Manager) Invalid() Handle { return Handle{m: mgr.m} }
