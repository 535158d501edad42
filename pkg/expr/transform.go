package expr

import (
	"fmt"

	"github.com/boolalg/expr/internal/enode"
)

// Compose substitutes sub for every occurrence of the literal with
// variable id varid within h. h and sub must share the same Manager.
// Composing on an invalid Handle returns an invalid Handle.
func (h Handle) Compose(varid int, sub Handle) Handle {
	if !h.IsValid() {
		return Handle{m: h.m}
	}
	return Handle{m: h.m, n: h.manager().Compose(h.n, varid, sub.n)}
}

// ComposeMap substitutes, for every entry varid -> sub in subs, every
// occurrence of the literal with variable id varid within h. Every sub
// must share h's Manager. Composing on an invalid Handle returns an
// invalid Handle.
func (h Handle) ComposeMap(subs map[int]Handle) Handle {
	if !h.IsValid() {
		return Handle{m: h.m}
	}
	nodeMap := make(map[int]*enode.Node, len(subs))
	for varid, sub := range subs {
		nodeMap[varid] = sub.n
	}
	return Handle{m: h.m, n: h.manager().ComposeMap(h.n, nodeMap)}
}

// RemapVar renames every literal's variable id through varmap, leaving
// ids absent from varmap unchanged. Remapping an invalid Handle returns
// an invalid Handle.
func (h Handle) RemapVar(varmap map[int]int) Handle {
	if !h.IsValid() {
		return Handle{m: h.m}
	}
	return Handle{m: h.m, n: h.manager().RemapVar(h.n, varmap)}
}

// Simplify re-runs h through the canonicalizing reducers. Every Handle
// this package produces, including the results of Compose, ComposeMap
// and RemapVar, is already canonical, so Simplify returns a Handle on
// the identical node. Simplifying an invalid Handle returns an invalid
// Handle.
func (h Handle) Simplify() Handle {
	if !h.IsValid() {
		return Handle{m: h.m}
	}
	return Handle{m: h.m, n: h.manager().Simplify(h.n)}
}

// Eval evaluates h given a bit-parallel assignment for each variable:
// vals[i] carries one evaluation's worth of bit i per lane, so a single
// Eval call can check up to 64 input combinations at once. mask confines
// the result to the lanes actually in use (see enode.Eval). vals must be
// at least InputSize(h) long; a shorter vector reports an
// *enode.ArgumentError rather than silently treating the missing
// entries as zero. Evaluating an invalid Handle returns 0 with no error.
func (h Handle) Eval(vals []uint64, mask uint64) (uint64, error) {
	if !h.IsValid() {
		return 0, nil
	}
	if n := enode.InputSize(h.n); len(vals) < n {
		return 0, &enode.ArgumentError{
			Op:  "Eval",
			Msg: fmt.Sprintf("vals has length %d, want at least %d", len(vals), n),
		}
	}
	return enode.Eval(h.n, vals, mask), nil
}

// LitNum returns the total number of literal occurrences in h, or 0 for
// an invalid Handle.
func (h Handle) LitNum() int {
	if !h.IsValid() {
		return 0
	}
	return enode.LitNum(h.n)
}

// LitNumVar returns the number of literal occurrences of varid in h,
// summed over both polarities, or 0 for an invalid Handle.
func (h Handle) LitNumVar(varid int) int {
	if !h.IsValid() {
		return 0
	}
	return enode.LitNumVar(h.n, varid)
}

// LitNumVarPhase returns the number of literal occurrences of varid at
// the given polarity in h, or 0 for an invalid Handle.
func (h Handle) LitNumVarPhase(varid int, inv bool) int {
	if !h.IsValid() {
		return 0
	}
	return enode.LitNumVarPhase(h.n, varid, inv)
}

// InputSize returns one more than the highest variable id appearing in
// h, or 0 if h has no literal at all (including an invalid Handle).
func (h Handle) InputSize() int {
	if !h.IsValid() {
		return 0
	}
	return enode.InputSize(h.n)
}

// SopCost estimates the (product count, literal count) of h's
// sum-of-products form without building it; an invalid Handle costs
// nothing.
func (h Handle) SopCost() enode.SopLit {
	if !h.IsValid() {
		return enode.SopLit{}
	}
	return enode.SopCost(h.n)
}

// PrimType is the classification Analyze returns.
type PrimType = enode.PrimType

const (
	PrimNone = enode.PrimNone
	PrimC0   = enode.PrimC0
	PrimC1   = enode.PrimC1
	PrimBuf  = enode.PrimBuf
	PrimNot  = enode.PrimNot
	PrimAnd  = enode.PrimAnd
	PrimNand = enode.PrimNand
	PrimOr   = enode.PrimOr
	PrimNor  = enode.PrimNor
	PrimXor  = enode.PrimXor
	PrimXnor = enode.PrimXnor
)

// Analyze classifies h as one of the built-in primitive gate shapes, or
// PrimNone if it fits none of them. Beyond 10 inputs only the structural
// shapes are checked (the truth-table fallback is not attempted). An
// invalid Handle reports PrimNone.
func (h Handle) Analyze() PrimType {
	if !h.IsValid() {
		return PrimNone
	}
	return enode.Analyze(h.n, enode.BruteForceClassify)
}
