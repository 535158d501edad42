// Command exprfmt reads one Boolean expression and prints its analysis.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/boolalg/expr/pkg/expr"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: exprfmt <rep-string-or-infix-expression>")
		os.Exit(1)
	}

	src := strings.Join(os.Args[1:], " ")
	mgr := expr.NewManager()

	h, err := expr.ParseRepString(mgr, src)
	if err != nil {
		h, err = expr.ParseInfix(mgr, src)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("shape:      %s\n", h.Analyze())
	fmt.Printf("literals:   %d\n", h.LitNum())
	fmt.Printf("inputs:     %d\n", h.InputSize())
	sop := h.SopCost()
	fmt.Printf("sop cost:   %d products, %d literals\n", sop.Np, sop.Nl)
	fmt.Printf("rep-string: %s\n", h.RepString())
	fmt.Printf("infix:      %s\n", h)
}
