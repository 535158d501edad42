package enode

import "testing"

func TestInvertConstantsAndLiterals(t *testing.T) {
	m := NewManager()
	if got := m.Invert(m.Zero()); got != nodeConst1 {
		t.Errorf("Invert(0) = %v, want 1", got)
	}
	if got := m.Invert(m.One()); got != nodeConst0 {
		t.Errorf("Invert(1) = %v, want 0", got)
	}
	a := m.PosLit(0)
	if got := m.Invert(a); got != m.NegLit(0) {
		t.Errorf("Invert(a) = %v, want ~a", got)
	}
	if got := m.Invert(m.Invert(a)); got != a {
		t.Errorf("Invert(Invert(a)) = %v, want a (double negation)", got)
	}
}

func TestInvertDeMorgan(t *testing.T) {
	m := NewManager()
	a, b := m.PosLit(0), m.PosLit(1)

	e := and(m, a, b)
	inv := m.Invert(e)
	if !negaEquiv(e, inv) {
		t.Error("Invert(a&b) should be negaEquiv to a&b")
	}
	want := or(m, m.NegLit(0), m.NegLit(1))
	if inv != want {
		t.Errorf("Invert(a&b) = %v, want ~a|~b (%v)", inv, want)
	}
}

func TestComposeSubstitutesLiteral(t *testing.T) {
	m := NewManager()
	a, b := m.PosLit(0), m.PosLit(1)
	e := and(m, a, b) // a & b

	got := m.Compose(e, 0, m.One()) // a=1
	if got != b {
		t.Errorf("Compose(a&b, 0, 1) = %v, want b", got)
	}

	got2 := m.Compose(e, 0, m.Zero()) // a=0
	if got2 != nodeConst0 {
		t.Errorf("Compose(a&b, 0, 0) = %v, want Const0", got2)
	}
}

func TestComposeReturnsIdenticalNodeWhenUnchanged(t *testing.T) {
	m := NewManager()
	a, b := m.PosLit(0), m.PosLit(1)
	e := and(m, a, b)

	got := m.Compose(e, 7, m.One()) // varid 7 does not occur in e
	if got != e {
		t.Error("Compose with a non-occurring varid should return the identical *Node")
	}
}

func TestComposeMapAndRemapVar(t *testing.T) {
	m := NewManager()
	a, b := m.PosLit(0), m.PosLit(1)
	e := xor(m, a, b)

	remapped := m.RemapVar(e, map[int]int{0: 5, 1: 6})
	want := xor(m, m.PosLit(5), m.PosLit(6))
	if remapped != want {
		t.Errorf("RemapVar = %v, want %v", remapped, want)
	}

	composed := m.ComposeMap(e, map[int]*Node{0: m.PosLit(2), 1: m.PosLit(3)})
	wantComposed := xor(m, m.PosLit(2), m.PosLit(3))
	if composed != wantComposed {
		t.Errorf("ComposeMap = %v, want %v", composed, wantComposed)
	}
}

func TestSimplifyIsNoOpOnCanonicalTree(t *testing.T) {
	m := NewManager()
	e := and(m, m.PosLit(0), or(m, m.PosLit(1), m.PosLit(2)))

	if got := m.Simplify(e); got != e {
		t.Error("Simplify on an already-canonical tree should return the identical *Node")
	}
}
