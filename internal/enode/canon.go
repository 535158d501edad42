package enode

// PosiEquiv reports whether a and b denote structurally identical trees.
// This is the equality pkg/expr exposes to callers: two expressions that
// compute the same Boolean function but were built in different shapes
// (operand order included) may still compare unequal under it.
func PosiEquiv(a, b *Node) bool { return posiEquiv(a, b) }

// NegaEquiv reports whether a and b are structural complements of one
// another.
func NegaEquiv(a, b *Node) bool { return negaEquiv(a, b) }

// posiEquiv reports whether a and b denote structurally identical trees:
// same kind, same variable id for literals, same operand count and
// pairwise-posiEquiv operands in the same (first-seen) order for operators.
func posiEquiv(a, b *Node) bool {
	if a == b {
		return true
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Const0, Const1:
		return true
	case PosLit, NegLit:
		return a.varID == b.varID
	default:
		if len(a.operands) != len(b.operands) {
			return false
		}
		for i, opA := range a.operands {
			if !posiEquiv(opA, b.operands[i]) {
				return false
			}
		}
		return true
	}
}

// negaEquiv reports whether a and b are structural complements of one
// another: the De Morgan dual of posiEquiv. And and Or are dual kinds of
// each other (the outer connective flips and every operand pair must be
// negaEquiv, as in ~(a&b) == ~a|~b); a literal is the dual of its opposite-polarity twin;
// Xor is self-dual with the complement carried on exactly one operand, so
// an odd number of operand positions must be negaEquiv (the rest posiEquiv)
// for the two Xor nodes to be complements.
func negaEquiv(a, b *Node) bool {
	switch a.kind {
	case Const0:
		return b.kind == Const1
	case Const1:
		return b.kind == Const0
	case PosLit:
		return b.kind == NegLit && a.varID == b.varID
	case NegLit:
		return b.kind == PosLit && a.varID == b.varID
	case And:
		if b.kind != Or || len(a.operands) != len(b.operands) {
			return false
		}
		for i, opA := range a.operands {
			if !negaEquiv(opA, b.operands[i]) {
				return false
			}
		}
		return true
	case Or:
		if b.kind != And || len(a.operands) != len(b.operands) {
			return false
		}
		for i, opA := range a.operands {
			if !negaEquiv(opA, b.operands[i]) {
				return false
			}
		}
		return true
	case Xor:
		if b.kind != Xor || len(a.operands) != len(b.operands) {
			return false
		}
		odd := false
		for i, opA := range a.operands {
			opB := b.operands[i]
			if negaEquiv(opA, opB) {
				odd = !odd
			} else if !posiEquiv(opA, opB) {
				return false
			}
		}
		return odd
	default:
		return false
	}
}

// checkNode is the AND/OR absorption test: it looks node up in pending,
// which accumulates the surviving operands of an in-progress and/or
// reduction. A posiEquiv match means node is already present and is
// dropped (idempotence, a & a == a); a negaEquiv match means node's
// complement is present and the whole reduction collapses (a & ~a == 0,
// reported to the caller as collapsed=true). Otherwise node is appended.
func checkNode(pending *[]*Node, node *Node) (collapsed bool) {
	for _, existing := range *pending {
		if posiEquiv(node, existing) {
			return false
		}
		if negaEquiv(node, existing) {
			return true
		}
	}
	*pending = append(*pending, node)
	return false
}

// checkNode2 is checkNode's XOR analog: a posiEquiv or negaEquiv match
// cancels BOTH the existing entry and node (a^a == 0, a^~a == 1) instead
// of just dropping node, and reports which case via its return value so
// the caller can track the running polarity flag.
func checkNode2(pending *[]*Node, node *Node) (collapsed bool) {
	for i, existing := range *pending {
		if posiEquiv(node, existing) {
			*pending = append((*pending)[:i], (*pending)[i+1:]...)
			return false
		}
		if negaEquiv(node, existing) {
			*pending = append((*pending)[:i], (*pending)[i+1:]...)
			return true
		}
	}
	*pending = append(*pending, node)
	return false
}
