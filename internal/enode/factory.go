package enode

// Manager is the sole producer of Node values. It owns an operand stack
// used as scratch space by the recursive builders (push candidate
// operands, then reduce the top of the stack down to one canonical Node)
// and a reusable pending-operand list used by the AND/OR/XOR reduction
// itself. Neither is safe for concurrent use — callers that need
// concurrent construction use one Manager per goroutine.
type Manager struct {
	stack   []*Node
	pending []*Node
}

// NewManager returns a ready-to-use Manager.
func NewManager() *Manager {
	return &Manager{
		stack:   make([]*Node, 0, 16),
		pending: make([]*Node, 0, 8),
	}
}

// small literal cache: PosLit/NegLit nodes for low variable ids are built
// constantly (every composition, every parse) and are immutable once
// built, so they are cached — the cache is process-wide, not per-Manager, since a
// literal Node carries no Manager-specific state.
const (
	smallVarMin   = 0
	smallVarMax   = 255
	smallVarCount = smallVarMax - smallVarMin + 1
)

var (
	smallPosLitCache [smallVarCount]*Node
	smallNegLitCache [smallVarCount]*Node
)

func init() {
	for i := 0; i < smallVarCount; i++ {
		smallPosLitCache[i] = &Node{kind: PosLit, varID: i + smallVarMin}
		smallNegLitCache[i] = &Node{kind: NegLit, varID: i + smallVarMin}
	}
}

// Zero returns the Const0 node.
func (m *Manager) Zero() *Node { return nodeConst0 }

// One returns the Const1 node.
func (m *Manager) One() *Node { return nodeConst1 }

// PosLit returns the positive-polarity literal for varid. varid must be
// >= 0; callers that accept a user-supplied varid must bounds-check it
// themselves (see OutOfRangeError).
func (m *Manager) PosLit(varid int) *Node {
	if varid < 0 {
		panic("enode: negative varid")
	}
	if varid >= smallVarMin && varid <= smallVarMax {
		return smallPosLitCache[varid-smallVarMin]
	}
	return &Node{kind: PosLit, varID: varid}
}

// NegLit returns the negative-polarity literal for varid.
func (m *Manager) NegLit(varid int) *Node {
	if varid < 0 {
		panic("enode: negative varid")
	}
	if varid >= smallVarMin && varid <= smallVarMax {
		return smallNegLitCache[varid-smallVarMin]
	}
	return &Node{kind: NegLit, varID: varid}
}

// Push appends n to the operand stack and returns nothing; callers pair
// it with Top to mark a base index and And/Or/Xor to reduce everything
// pushed since that base back down to a single Node.
func (m *Manager) Push(n *Node) {
	m.stack = append(m.stack, n)
}

// Top returns the current size of the operand stack, to be saved as the
// base index for a later And/Or/Xor call.
func (m *Manager) Top() int {
	return len(m.stack)
}

// popTo truncates the operand stack back to base and returns the
// operands that were above it, in push order. The returned slice aliases
// m.stack's backing array and is only valid until the next Push.
func (m *Manager) popTo(base int) []*Node {
	ops := m.stack[base:]
	m.stack = m.stack[:base]
	return ops
}

// newOp builds a fresh n-ary operator Node. ops must already be
// canonical (no nested same-kind operator, no constants, no
// posiEquiv/negaEquiv pair) and have len >= 2; callers are the And/Or/Xor
// reducers below, which establish that invariant.
func newOp(kind Kind, ops []*Node) *Node {
	cp := make([]*Node, len(ops))
	copy(cp, ops)
	return &Node{kind: kind, operands: cp}
}

// And reduces the operands pushed since base to their canonical AND,
// flattening nested ANDs one level, dropping Const1 operands and
// posiEquiv duplicates, collapsing to Const0 on a Const0 operand or a
// negaEquiv (complementary) pair, and returning Const1 for an empty
// operand list.
func (m *Manager) And(base int) *Node {
	ops := m.popTo(base)
	m.pending = m.pending[:0]
	collapsed := false
	for _, n := range ops {
		if collapsed {
			break
		}
		switch n.kind {
		case Const0:
			collapsed = true
		case Const1:
			// absorbed
		case And:
			for _, opr := range n.operands {
				if checkNode(&m.pending, opr) {
					collapsed = true
					break
				}
			}
		default:
			if checkNode(&m.pending, n) {
				collapsed = true
			}
		}
	}
	if collapsed {
		return nodeConst0
	}
	switch len(m.pending) {
	case 0:
		return nodeConst1
	case 1:
		return m.pending[0]
	default:
		return newOp(And, m.pending)
	}
}

// Or is And's dual: flattens nested ORs, drops Const0 operands, collapses
// to Const1 on a Const1 operand or a complementary pair, and returns
// Const0 for an empty operand list.
func (m *Manager) Or(base int) *Node {
	ops := m.popTo(base)
	m.pending = m.pending[:0]
	collapsed := false
	for _, n := range ops {
		if collapsed {
			break
		}
		switch n.kind {
		case Const1:
			collapsed = true
		case Const0:
			// absorbed
		case Or:
			for _, opr := range n.operands {
				if checkNode(&m.pending, opr) {
					collapsed = true
					break
				}
			}
		default:
			if checkNode(&m.pending, n) {
				collapsed = true
			}
		}
	}
	if collapsed {
		return nodeConst1
	}
	switch len(m.pending) {
	case 0:
		return nodeConst0
	case 1:
		return m.pending[0]
	default:
		return newOp(Or, m.pending)
	}
}

// Xor flattens nested XORs, drops Const0 operands, toggles a running
// polarity flag on each Const1 operand and on each negaEquiv pair that
// cancels out of the pending list (a posiEquiv pair, a^a == 0, drops
// silently; a negaEquiv pair, a^~a == 1, drops and flips polarity), and
// complements the result once at
// the end if the flag ended up set. An empty operand list reduces to
// Const0 (XOR's identity).
func (m *Manager) Xor(base int) *Node {
	ops := m.popTo(base)
	m.pending = m.pending[:0]
	inv := false
	for _, n := range ops {
		switch n.kind {
		case Const1:
			inv = !inv
		case Const0:
			// absorbed
		case Xor:
			for _, opr := range n.operands {
				if checkNode2(&m.pending, opr) {
					inv = !inv
				}
			}
		default:
			if checkNode2(&m.pending, n) {
				inv = !inv
			}
		}
	}
	var node *Node
	switch len(m.pending) {
	case 0:
		node = nodeConst0
	case 1:
		node = m.pending[0]
	default:
		node = newOp(Xor, m.pending)
	}
	if inv {
		return m.Invert(node)
	}
	return node
}
