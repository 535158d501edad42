package enode

// BadVarID is the sentinel variable id returned for a literal query
// (VarID, Literal) on a node that isn't a literal.
const BadVarID = -1

// Literal identifies a literal node by variable id and polarity,
// independent of which *Node instance happens to represent it. A
// non-literal node's Literal has VarID == BadVarID.
type Literal struct {
	VarID    int
	Inverted bool
}

// LiteralOf returns node's (varid, polarity) pair if node is a literal,
// or the BadVarID sentinel Literal otherwise.
func LiteralOf(node *Node) Literal {
	switch node.kind {
	case PosLit:
		return Literal{VarID: node.varID}
	case NegLit:
		return Literal{VarID: node.varID, Inverted: true}
	default:
		return Literal{VarID: BadVarID}
	}
}

// IsLiteralPhase reports whether node is a literal of the given
// polarity: inv selects NegLit, !inv selects PosLit.
func IsLiteralPhase(node *Node, inv bool) bool {
	if inv {
		return node.kind == NegLit
	}
	return node.kind == PosLit
}

// isSimpleOp reports whether every operand of an operator node is
// itself a literal.
func isSimpleOp(node *Node) bool {
	for _, opr := range node.operands {
		if !opr.kind.IsLit() {
			return false
		}
	}
	return true
}

// IsSimple reports whether node is a constant, a literal, or an
// operator node all of whose operands are literals.
func IsSimple(node *Node) bool {
	return !node.kind.IsOp() || isSimpleOp(node)
}

// IsSimpleAnd reports whether node is an AND all of whose operands are
// literals.
func IsSimpleAnd(node *Node) bool { return node.kind == And && isSimpleOp(node) }

// IsSimpleOr reports whether node is an OR all of whose operands are
// literals.
func IsSimpleOr(node *Node) bool { return node.kind == Or && isSimpleOp(node) }

// IsSimpleXor reports whether node is an XOR all of whose operands are
// literals.
func IsSimpleXor(node *Node) bool { return node.kind == Xor && isSimpleOp(node) }

// IsSop reports whether node is already in sum-of-products form: a
// constant, a literal, a simple AND (IsSimple covers both of those plus
// the simple-AND case itself), or an OR whose every operand is either a
// literal or a simple AND. An XOR is never SOP.
func IsSop(node *Node) bool {
	if node.kind == Xor {
		return false
	}
	if IsSimple(node) {
		return true
	}
	if node.kind != Or {
		return false
	}
	for _, opr := range node.operands {
		if !opr.kind.IsLit() && !IsSimpleAnd(opr) {
			return false
		}
	}
	return true
}
