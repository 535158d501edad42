package rep

import (
	"testing"

	"github.com/boolalg/expr/internal/enode"
)

func build(m *enode.Manager) *enode.Node {
	a, b, c := m.PosLit(0), m.PosLit(1), m.NegLit(2)
	base := m.Top()
	m.Push(a)
	m.Push(b)
	inner := m.And(base)
	base = m.Top()
	m.Push(inner)
	m.Push(c)
	return m.Or(base)
}

func TestRepStringRoundTrip(t *testing.T) {
	cases := []func(m *enode.Manager) *enode.Node{
		func(m *enode.Manager) *enode.Node { return m.Zero() },
		func(m *enode.Manager) *enode.Node { return m.One() },
		func(m *enode.Manager) *enode.Node { return m.PosLit(3) },
		func(m *enode.Manager) *enode.Node { return m.NegLit(12) },
		build,
	}

	for i, make := range cases {
		m := enode.NewManager()
		node := make(m)
		s := RepString(node)

		m2 := enode.NewManager()
		got, err := ParseRepString(m2, s)
		if err != nil {
			t.Fatalf("case %d: ParseRepString(%q) error: %v", i, s, err)
		}
		if RepString(got) != s {
			t.Errorf("case %d: round trip mismatch: %q vs %q", i, s, RepString(got))
		}
	}
}

func TestRepStringLiteralForms(t *testing.T) {
	m := enode.NewManager()
	if got := RepString(m.Zero()); got != "C0" {
		t.Errorf("RepString(Zero) = %q, want C0", got)
	}
	if got := RepString(m.PosLit(7)); got != "P7" {
		t.Errorf("RepString(PosLit(7)) = %q, want P7", got)
	}
	if got := RepString(m.NegLit(7)); got != "N7" {
		t.Errorf("RepString(NegLit(7)) = %q, want N7", got)
	}
}

func TestParseRepStringRejectsGarbage(t *testing.T) {
	m := enode.NewManager()
	if _, err := ParseRepString(m, "Q5"); err == nil {
		t.Error("expected a parse error for an unrecognized tag byte")
	}
	if _, err := ParseRepString(m, "P3extra"); err == nil {
		t.Error("expected a parse error for trailing characters")
	}
}
