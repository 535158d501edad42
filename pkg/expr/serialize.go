package expr

import (
	"io"

	"github.com/boolalg/expr/internal/rep"
)

// RepString renders h in canonical prefix-tagged form. It is the only
// serialization this package guarantees round-trips exactly: parsing it
// back with ParseRepString always reconstructs an Equal Handle. An
// invalid Handle renders as the empty string, which ParseRepString
// parses back into an invalid Handle.
func (h Handle) RepString() string { return rep.RepString(h.n) }

// String renders h as a human-readable infix expression. It satisfies
// fmt.Stringer, so a Handle prints readably with %v and %s, but it is a
// best-effort, lossy-in-spirit form meant for logging and debugging, not
// for a guaranteed round trip — use RepString for that. An invalid
// Handle renders as the empty string.
func (h Handle) String() string { return rep.ToInfix(h.n) }

// ParseRepString parses a canonical rep-string into a Handle on mgr.
func ParseRepString(mgr *Manager, s string) (Handle, error) {
	n, err := rep.ParseRepString(mgr.m, s)
	if err != nil {
		return Handle{}, err
	}
	return Handle{m: mgr.m, n: n}, nil
}

// ParseInfix parses a best-effort infix expression (see rep.ParseInfix
// for the accepted grammar) into a Handle on mgr.
func ParseInfix(mgr *Manager, s string) (Handle, error) {
	n, err := rep.ParseInfix(mgr.m, s)
	if err != nil {
		return Handle{}, err
	}
	return Handle{m: mgr.m, n: n}, nil
}

// Dump writes h's binary form to w. An invalid Handle dumps the
// invalid-expression sentinel rather than panicking, so a caller
// serializing a collection of Handles that may include zero values does
// not need to special-case them.
func (h Handle) Dump(w io.Writer) error {
	return rep.Dump(w, h.n)
}

// Restore reads a Handle back from r in the form Dump produces, on mgr.
// A nil error with an invalid result Handle means r encoded the
// invalid-expression sentinel.
func Restore(r io.Reader, mgr *Manager) (Handle, error) {
	n, err := rep.Restore(r, mgr.m)
	if err != nil {
		return Handle{}, err
	}
	return Handle{m: mgr.m, n: n}, nil
}
