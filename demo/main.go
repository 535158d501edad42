// Command demo is a worked example of building, simplifying and
// inspecting Boolean expressions with pkg/expr.
package main

import (
	"fmt"

	"github.com/boolalg/expr/pkg/expr"
)

func main() {
	mgr := expr.NewManager()

	a := mgr.Literal(0)
	b := mgr.Literal(1)
	c := mgr.Literal(2)

	// (a & b) | (a & c) factors to a & (b | c) under the algebra's
	// canonical form only if built that way directly; eval agreement,
	// not shape, is what actually proves the two are the same function.
	lhs := mgr.Or(mgr.And(a, b), mgr.And(a, c))
	rhs := mgr.And(a, mgr.Or(b, c))

	fmt.Println("lhs:", lhs)
	fmt.Println("rhs:", rhs)
	fmt.Println("same shape:", lhs.Equal(rhs))

	sameFunction := true
	for assignment := uint64(0); assignment < 8; assignment++ {
		vals := make([]uint64, 3)
		for i := range vals {
			if assignment&(1<<uint(i)) != 0 {
				vals[i] = ^uint64(0)
			}
		}
		lv, err := lhs.Eval(vals, ^uint64(0))
		if err != nil {
			panic(err)
		}
		rv, err := rhs.Eval(vals, ^uint64(0))
		if err != nil {
			panic(err)
		}
		if lv&1 != rv&1 {
			sameFunction = false
			break
		}
	}
	fmt.Println("same function:", sameFunction)

	xorChain := mgr.Xor(a, b, c)
	fmt.Println("a ^ b ^ c rep-string:", xorChain.RepString())
	fmt.Println("a ^ b ^ c shape:", xorChain.Analyze())

	notA := a.Not()
	fmt.Println("~a complements a:", notA.EquivComplement(a))

	composed := lhs.Compose(0, mgr.One())
	fmt.Println("lhs with a=1:", composed, "shape:", composed.Analyze())
}
