// Package expr provides a public API for building and manipulating
// Boolean expressions held in factored (AND/OR/XOR-over-literals) normal
// form.
//
// Basic usage:
//
//	mgr := expr.NewManager()
//	a, b := mgr.Literal(0), mgr.Literal(1)
//	f := mgr.And(a, b)
//	g := mgr.Or(f, mgr.Not(b))
//	fmt.Println(g.RepString())
//
// Every Handle is produced by exactly one Manager, and a Manager is not
// safe for concurrent use — a goroutine that builds expressions
// concurrently with others uses its own Manager.
//
// Handles are immutable and structurally shared: an operator node holds
// references to its operand nodes rather than copies, and a transform
// that changes nothing returns the identical node. Building And(a, b) a
// second time builds a new node that is Equal to the first but is not
// the same node. Equal compares Handles by shape, not by
// the Boolean function they compute — see Equal's doc comment for the
// distinction and Eval/Analyze for function-level comparison instead.
package expr
