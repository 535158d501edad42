package expr

import "github.com/boolalg/expr/internal/enode"

// badVarID is the sentinel VarID/Literal.VarID returned for a literal
// query against a non-literal or invalid Handle.
const badVarID = enode.BadVarID

// IsZero reports whether h is the constant-false expression. An invalid
// Handle is neither Zero nor One, so this reports false.
func (h Handle) IsZero() bool { return h.IsValid() && h.n.Kind() == enode.Const0 }

// IsOne reports whether h is the constant-true expression.
func (h Handle) IsOne() bool { return h.IsValid() && h.n.Kind() == enode.Const1 }

// IsConst reports whether h is Zero or One.
func (h Handle) IsConst() bool {
	if !h.IsValid() {
		return false
	}
	k := h.n.Kind()
	return k == enode.Const0 || k == enode.Const1
}

// IsLiteral reports whether h is a single variable or its negation.
func (h Handle) IsLiteral() bool { return h.IsValid() && h.n.Kind().IsLit() }

// IsLiteralPhase reports whether h is a literal of the given polarity:
// inv selects a negative literal, !inv a positive one.
func (h Handle) IsLiteralPhase(inv bool) bool {
	return h.IsValid() && enode.IsLiteralPhase(h.n, inv)
}

// IsPosLiteral reports whether h is a plain (non-negated) variable.
func (h Handle) IsPosLiteral() bool { return h.IsValid() && h.n.Kind() == enode.PosLit }

// IsNegLiteral reports whether h is a negated variable.
func (h Handle) IsNegLiteral() bool { return h.IsValid() && h.n.Kind() == enode.NegLit }

// VarID returns the variable id of a literal Handle, or badVarID (-1)
// if h is not a literal (including an invalid Handle).
func (h Handle) VarID() int {
	if !h.IsValid() || !h.n.Kind().IsLit() {
		return badVarID
	}
	return h.n.VarID()
}

// Literal identifies a literal Handle by variable id and polarity,
// independent of which Handle instance happens to represent it.
type Literal = enode.Literal

// Literal returns h's (varid, polarity) pair, or the badVarID sentinel
// Literal if h is not a literal.
func (h Handle) Literal() Literal {
	if !h.IsValid() {
		return Literal{VarID: badVarID}
	}
	return enode.LiteralOf(h.n)
}

// IsAnd, IsOr and IsXor report h's top-level connective. An invalid
// Handle is none of these.
func (h Handle) IsAnd() bool { return h.IsValid() && h.n.Kind() == enode.And }
func (h Handle) IsOr() bool  { return h.IsValid() && h.n.Kind() == enode.Or }
func (h Handle) IsXor() bool { return h.IsValid() && h.n.Kind() == enode.Xor }

// IsOp reports whether h is an AND, OR or XOR node.
func (h Handle) IsOp() bool { return h.IsValid() && h.n.Kind().IsOp() }

// IsSimple reports whether h is a constant, a literal, or an operator
// Handle all of whose operands are literals.
func (h Handle) IsSimple() bool { return h.IsValid() && enode.IsSimple(h.n) }

// IsSimpleAnd reports whether h is an AND all of whose operands are
// literals.
func (h Handle) IsSimpleAnd() bool { return h.IsValid() && enode.IsSimpleAnd(h.n) }

// IsSimpleOr reports whether h is an OR all of whose operands are
// literals.
func (h Handle) IsSimpleOr() bool { return h.IsValid() && enode.IsSimpleOr(h.n) }

// IsSimpleXor reports whether h is an XOR all of whose operands are
// literals.
func (h Handle) IsSimpleXor() bool { return h.IsValid() && enode.IsSimpleXor(h.n) }

// IsSop reports whether h is already in sum-of-products form: a
// constant, a literal, a simple AND, or an OR whose every operand is a
// literal or a simple AND.
func (h Handle) IsSop() bool { return h.IsValid() && enode.IsSop(h.n) }

// OperandCount returns the number of operands of an operator Handle, or
// 0 for a constant, a literal, or an invalid Handle.
func (h Handle) OperandCount() int {
	if !h.IsValid() {
		return 0
	}
	return h.n.OperandCount()
}

// Operand returns the i-th operand of an operator Handle, sharing h's
// Manager. Calling it with an out-of-range index, on a non-operator
// Handle, or on an invalid Handle (which has no operands) panics; no
// method reports an enode.OutOfRangeError for a bad index.
func (h Handle) Operand(i int) Handle {
	if !h.IsValid() {
		panic("expr: Operand on invalid Handle")
	}
	return Handle{m: h.m, n: h.n.Operand(i)}
}

// Operands returns every operand of an operator Handle, in first-seen
// construction order, or nil for a constant, a literal, or an invalid
// Handle.
func (h Handle) Operands() []Handle {
	if !h.IsValid() {
		return nil
	}
	ops := h.n.Operands()
	out := make([]Handle, len(ops))
	for i, n := range ops {
		out[i] = Handle{m: h.m, n: n}
	}
	return out
}

// Equal reports whether h and other denote structurally identical
// expressions (enode.PosiEquiv). Two invalid Handles always compare
// equal; an invalid Handle never equals a valid one. Two expressions
// computing the same Boolean function but built in a different shape —
// including simply swapping the argument order of a commutative
// And/Or/Xor call — may still compare unequal under Equal; use Eval
// over every input combination, or Analyze, to compare by function
// instead of by shape.
func (h Handle) Equal(other Handle) bool {
	if !h.IsValid() || !other.IsValid() {
		return h.IsValid() == other.IsValid()
	}
	return enode.PosiEquiv(h.n, other.n)
}

// EquivComplement reports whether h and other are structural complements
// of one another (enode.NegaEquiv) — a stronger, shape-based test than
// checking h.Equal(other.Not()), since it never has to build the
// complement node to answer. An invalid Handle is never the complement
// of anything, including another invalid Handle.
func (h Handle) EquivComplement(other Handle) bool {
	if !h.IsValid() || !other.IsValid() {
		return false
	}
	return enode.NegaEquiv(h.n, other.n)
}
