package enode

// Invert returns the logical complement of node: De Morgan duals for
// And/Or, polarity flip for a literal, the other constant for a
// constant, and — for Xor — the complement of exactly one operand (an
// odd number of inverted operands is sufficient and this picks the
// first) rebuilt through Xor so the result re-canonicalizes.
func (m *Manager) Invert(node *Node) *Node {
	switch node.kind {
	case Const0:
		return nodeConst1
	case Const1:
		return nodeConst0
	case PosLit:
		return m.NegLit(node.varID)
	case NegLit:
		return m.PosLit(node.varID)
	}

	base := m.Top()
	for i, opr := range node.operands {
		if node.kind == Xor && i != 0 {
			m.Push(opr)
		} else {
			m.Push(m.Invert(opr))
		}
	}

	switch node.kind {
	case And:
		return m.Or(base)
	case Or:
		return m.And(base)
	case Xor:
		return m.Xor(base)
	default:
		panic("enode: Invert: unreachable node kind")
	}
}

// Compose substitutes sub for every occurrence of the literal with
// variable id varid, tracking reference identity through the recursion
// so that a subtree with no occurrence of varid is returned unchanged
// (same *Node) rather than rebuilt.
func (m *Manager) Compose(node *Node, varid int, sub *Node) *Node {
	switch node.kind {
	case Const0, Const1:
		return node
	case PosLit:
		if node.varID == varid {
			return sub
		}
		return node
	case NegLit:
		if node.varID == varid {
			return m.Invert(sub)
		}
		return node
	}

	base := m.Top()
	ident := true
	for _, opr := range node.operands {
		newOpr := m.Compose(opr, varid, sub)
		if newOpr != opr {
			ident = false
		}
		m.Push(newOpr)
	}
	if ident {
		m.popTo(base)
		return node
	}
	return m.reduceOp(node.kind, base)
}

// ComposeMap substitutes every literal whose variable id has an entry in
// subs, leaving literals not named in subs untouched. Variable ids absent
// from subs are passed through like Compose's no-match case.
func (m *Manager) ComposeMap(node *Node, subs map[int]*Node) *Node {
	switch node.kind {
	case Const0, Const1:
		return node
	case PosLit:
		if sub, ok := subs[node.varID]; ok {
			return sub
		}
		return node
	case NegLit:
		if sub, ok := subs[node.varID]; ok {
			return m.Invert(sub)
		}
		return node
	}

	base := m.Top()
	ident := true
	for _, opr := range node.operands {
		newOpr := m.ComposeMap(opr, subs)
		if newOpr != opr {
			ident = false
		}
		m.Push(newOpr)
	}
	if ident {
		m.popTo(base)
		return node
	}
	return m.reduceOp(node.kind, base)
}

// RemapVar renames every literal's variable id through varmap, leaving
// ids absent from varmap unchanged.
func (m *Manager) RemapVar(node *Node, varmap map[int]int) *Node {
	switch node.kind {
	case Const0, Const1:
		return node
	case PosLit:
		if to, ok := varmap[node.varID]; ok {
			return m.PosLit(to)
		}
		return node
	case NegLit:
		if to, ok := varmap[node.varID]; ok {
			return m.NegLit(to)
		}
		return node
	}

	base := m.Top()
	ident := true
	for _, opr := range node.operands {
		newOpr := m.RemapVar(opr, varmap)
		if newOpr != opr {
			ident = false
		}
		m.Push(newOpr)
	}
	if ident {
		m.popTo(base)
		return node
	}
	return m.reduceOp(node.kind, base)
}

// Simplify re-runs every operand through the canonicalizing reducers,
// rebuilding an operator only when one of its operands came back as a
// different *Node. Constants and literals always come back unchanged, so
// Simplify returns the identical *Node for every tree; every Node this
// package produces, including Compose/ComposeMap/RemapVar results, is
// already canonical.
func (m *Manager) Simplify(node *Node) *Node {
	if !node.kind.IsOp() {
		return node
	}

	base := m.Top()
	ident := true
	for _, opr := range node.operands {
		newOpr := m.Simplify(opr)
		if newOpr != opr {
			ident = false
		}
		m.Push(newOpr)
	}
	if ident {
		m.popTo(base)
		return node
	}
	return m.reduceOp(node.kind, base)
}

// reduceOp dispatches to the reducer matching kind; base is the operand
// stack index the caller pushed this operator's (possibly-changed)
// operands onto.
func (m *Manager) reduceOp(kind Kind, base int) *Node {
	switch kind {
	case And:
		return m.And(base)
	case Or:
		return m.Or(base)
	case Xor:
		return m.Xor(base)
	default:
		panic("enode: reduceOp: unreachable node kind")
	}
}
