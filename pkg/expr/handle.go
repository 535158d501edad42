package expr

import "github.com/boolalg/expr/internal/enode"

// Handle is an immutable reference to a canonical Boolean expression. Its
// zero value is invalid (IsValid reports false); every other Handle is
// produced by a Manager method and carries that Manager along so later
// operations on it reduce through the same canonicalizing factory.
//
// Two Handles compare equal with == only when they share both the same
// Manager and the same underlying node; use Equal to compare Handles
// structurally, including across Managers.
type Handle struct {
	m *enode.Manager
	n *enode.Node
}

// IsValid reports whether h was produced by a Manager method, as opposed
// to being the zero Handle{} or a Manager's Invalid().
func (h Handle) IsValid() bool { return h.n != nil }

// IsInvalid reports !h.IsValid(); provided as the named counterpart to
// Manager.Invalid for callers that read more naturally the other way.
func (h Handle) IsInvalid() bool { return h.n == nil }

func (h Handle) manager() *enode.Manager {
	if h.m == nil {
		panic("expr: operation on an invalid Handle")
	}
	return h.m
}

// And returns the AND of h and the given operands.
func (mgr *Manager) And(h Handle, rest ...Handle) Handle {
	return mgr.reduceN(enode.And, h, rest)
}

// Or returns the OR of h and the given operands.
func (mgr *Manager) Or(h Handle, rest ...Handle) Handle {
	return mgr.reduceN(enode.Or, h, rest)
}

// Xor returns the XOR of h and the given operands.
func (mgr *Manager) Xor(h Handle, rest ...Handle) Handle {
	return mgr.reduceN(enode.Xor, h, rest)
}

// Not returns the logical complement of h.
func (mgr *Manager) Not(h Handle) Handle {
	return Handle{m: mgr.m, n: mgr.m.Invert(h.node())}
}

func (h Handle) node() *enode.Node {
	if h.n == nil {
		panic("expr: operation on an invalid Handle")
	}
	return h.n
}

func (mgr *Manager) reduceN(kind enode.Kind, first Handle, rest []Handle) Handle {
	base := mgr.m.Top()
	mgr.m.Push(first.node())
	for _, h := range rest {
		mgr.m.Push(h.node())
	}
	var n *enode.Node
	switch kind {
	case enode.And:
		n = mgr.m.And(base)
	case enode.Or:
		n = mgr.m.Or(base)
	case enode.Xor:
		n = mgr.m.Xor(base)
	}
	return Handle{m: mgr.m, n: n}
}

// And returns h AND other, using h's own Manager.
func (h Handle) And(other Handle, rest ...Handle) Handle {
	return (&Manager{m: h.manager()}).And(h, append([]Handle{other}, rest...)...)
}

// Or returns h OR other, using h's own Manager.
func (h Handle) Or(other Handle, rest ...Handle) Handle {
	return (&Manager{m: h.manager()}).Or(h, append([]Handle{other}, rest...)...)
}

// Xor returns h XOR other, using h's own Manager.
func (h Handle) Xor(other Handle, rest ...Handle) Handle {
	return (&Manager{m: h.manager()}).Xor(h, append([]Handle{other}, rest...)...)
}

// Not returns the logical complement of h, using h's own Manager.
func (h Handle) Not() Handle {
	return (&Manager{m: h.manager()}).Not(h)
}

// AndAssign sets *h to *h AND other and returns *h, for chaining in the
// style of the standard library's big.Int accumulator methods.
func (h *Handle) AndAssign(other Handle) Handle {
	*h = h.And(other)
	return *h
}

// OrAssign sets *h to *h OR other and returns *h.
func (h *Handle) OrAssign(other Handle) Handle {
	*h = h.Or(other)
	return *h
}

// XorAssign sets *h to *h XOR other and returns *h.
func (h *Handle) XorAssign(other Handle) Handle {
	*h = h.Xor(other)
	return *h
}

// NotAssign sets *h to the complement of *h and returns *h.
func (h *Handle) NotAssign() Handle {
	*h = h.Not()
	return *h
}

// AndOf returns the AND of every Handle in hs, all built on mgr. It is
// the variadic counterpart to And for callers holding a slice rather
// than a fixed set of operands; AndOf(mgr) with no operands returns
// mgr.One(), AND's identity.
func AndOf(mgr *Manager, hs ...Handle) Handle {
	if len(hs) == 0 {
		return mgr.One()
	}
	return mgr.And(hs[0], hs[1:]...)
}

// OrOf is AndOf's OR counterpart; OrOf(mgr) with no operands returns
// mgr.Zero(), OR's identity.
func OrOf(mgr *Manager, hs ...Handle) Handle {
	if len(hs) == 0 {
		return mgr.Zero()
	}
	return mgr.Or(hs[0], hs[1:]...)
}

// XorOf is AndOf's XOR counterpart; XorOf(mgr) with no operands returns
// mgr.Zero(), XOR's identity.
func XorOf(mgr *Manager, hs ...Handle) Handle {
	if len(hs) == 0 {
		return mgr.Zero()
	}
	return mgr.Xor(hs[0], hs[1:]...)
}
